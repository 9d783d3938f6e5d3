package pipeline

import "regexp"

// Precompiled regex patterns for performance.
var (
	// mathPattern recognizes the four mathematics delimiter conventions in a
	// single alternation. Order matters: the $$..$$ block form is attempted
	// before the $..$ inline form so a double dollar sign is never split into
	// two inline matches. Block and inline content admits anything that is not
	// a dollar sign, plus escaped dollar signs (\$), matched greedily. The
	// legacy \\(..\\) and \\[..\\] forms match lazily so the first closing
	// token ends the span.
	mathPattern = regexp.MustCompile(
		`(\$\$)(?:[^$]|\\\$)+(\$\$)` + // block mathematics
			`|(\$)(?:[^$]|\\\$)+(\$)` + // inline mathematics
			`|(\\\\\().+?(\\\\\))` + // legacy inline mathematics
			`|(\\\\\[).+?(\\\\\])`, // legacy block mathematics
	)
)

// mathKind identifies which delimiter convention produced a span.
type mathKind int

const (
	mathInline mathKind = iota
	mathBlock
	mathLegacyInline
	mathLegacyBlock
)

// mathSpan is one recognized mathematics occurrence in a document.
// start and end are byte offsets of the full delimited span including its
// delimiters, as a half-open [start, end) range. text is the inner content
// with the delimiters stripped; it aliases the source string, no copy.
type mathSpan struct {
	start int
	end   int
	kind  mathKind
	text  string
}

// mathScanner yields mathematics spans lazily in document order.
// Spans are strictly ordered and non-overlapping: each call to next resumes
// the search immediately after the previous match's end offset. A fresh
// scanner restarts from the top of the content.
type mathScanner struct {
	content string
	pos     int
}

func newMathScanner(content string) *mathScanner {
	return &mathScanner{content: content}
}

// next returns the next mathematics span, or false when the content is
// exhausted. Dangling or mismatched delimiters never match; they are left
// for the surrounding text to pass through untouched.
func (s *mathScanner) next() (mathSpan, bool) {
	if s.pos >= len(s.content) {
		return mathSpan{}, false
	}

	loc := mathPattern.FindStringSubmatchIndex(s.content[s.pos:])
	if loc == nil {
		s.pos = len(s.content)
		return mathSpan{}, false
	}

	start := s.pos + loc[0]
	end := s.pos + loc[1]
	kind := kindFromMatch(loc)
	s.pos = end

	return mathSpan{
		start: start,
		end:   end,
		kind:  kind,
		text:  stripDelimiters(kind, s.content[start:end]),
	}, true
}

// kindFromMatch maps the matched opening-delimiter capture group to its
// convention. Groups 1/3/5/7 are the opening tokens of the four alternatives
// in mathPattern; exactly one of them participates in any match.
func kindFromMatch(loc []int) mathKind {
	switch {
	case loc[2] >= 0:
		return mathBlock
	case loc[6] >= 0:
		return mathInline
	case loc[10] >= 0:
		return mathLegacyInline
	default:
		return mathLegacyBlock
	}
}

// stripDelimiters removes the opening and closing delimiter tokens from a
// matched span by fixed byte length: 2 for $$, 1 for $, and 3 for each legacy
// token (a 2-character logical symbol written as a 3-byte escape sequence).
func stripDelimiters(kind mathKind, delimited string) string {
	switch kind {
	case mathBlock:
		return delimited[2 : len(delimited)-2]
	case mathInline:
		return delimited[1 : len(delimited)-1]
	default:
		return delimited[3 : len(delimited)-3]
	}
}

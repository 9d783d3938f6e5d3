package pipeline

import (
	"context"
	"strings"
)

// Replacement wrapper fragments. Both legacy and modern conventions are
// normalized to the same two shapes, with standard single/double dollar
// delimiters re-inserted inside the wrapper so a downstream mathematics
// renderer recognizes them uniformly.
const (
	blockMathOpen   = `<div class="math">$$`
	blockMathClose  = `$$</div>`
	inlineMathOpen  = `<span class="inline math">$`
	inlineMathClose = `$</span>`
)

// MathRewriter abstracts the mathematics rewriting pass.
type MathRewriter interface {
	RewriteMath(ctx context.Context, content string) string
}

// MathJaxRewriter expands $- and $$-pairs (and their legacy \\(..\\) and
// \\[..\\] forms) into wrapper markup that does not interfere with the
// markdown parser.
type MathJaxRewriter struct{}

// RewriteMath applies the mathematics rewriting pass.
func (r *MathJaxRewriter) RewriteMath(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}
	return RewriteMathematics(content)
}

// RewriteMathematics replaces every delimited mathematics span in content
// with its wrapper markup. Text outside matched spans is copied through
// byte-for-byte and in original order. The function is total: any input,
// including the empty string and text with dangling or mismatched
// delimiters, produces a defined output, and content without a single valid
// pair is returned unchanged.
func RewriteMathematics(content string) string {
	scanner := newMathScanner(content)
	span, ok := scanner.next()
	if !ok {
		return content
	}

	var b strings.Builder
	b.Grow(len(content) + len(content)/4)

	previousEnd := 0
	for ; ok; span, ok = scanner.next() {
		b.WriteString(content[previousEnd:span.start])
		writeReplacement(&b, span)
		previousEnd = span.end
	}
	b.WriteString(content[previousEnd:])

	return b.String()
}

// writeReplacement appends the wrapper markup for one span.
func writeReplacement(b *strings.Builder, span mathSpan) {
	switch span.kind {
	case mathBlock, mathLegacyBlock:
		b.WriteString(blockMathOpen)
		b.WriteString(span.text)
		b.WriteString(blockMathClose)
	default:
		b.WriteString(inlineMathOpen)
		b.WriteString(span.text)
		b.WriteString(inlineMathClose)
	}
}

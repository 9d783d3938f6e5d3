package pipeline

import (
	"context"
	"testing"
)

func TestRewriteMathematicsIdentityOnAbsence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "plain text",
			content: "Text without mathematics",
		},
		{
			name:    "single dollar sign",
			content: "It costs $5 at most",
		},
		{
			name:    "mismatched delimiters",
			content: "$$Text with a non matching delimiters mathematics\\]",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "empty block mathematics",
			content: "$$$$",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RewriteMathematics(tt.content); got != tt.content {
				t.Errorf("RewriteMathematics(%q) = %q, want input unchanged", tt.content, got)
			}
		})
	}
}

func TestRewriteMathematicsReplacements(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "inline mathematics",
			content:  "Pythagorean theorem: $a^{2} + b^{2} = c^{2}$",
			expected: `Pythagorean theorem: <span class="inline math">$a^{2} + b^{2} = c^{2}$</span>`,
		},
		{
			name:     "block mathematics",
			content:  "Euler's identity: $$e^{i\\pi} + 1 = 0$$",
			expected: `Euler's identity: <div class="math">$$e^{i\pi} + 1 = 0$$</div>`,
		},
		{
			name:     "legacy inline normalizes to standard delimiters",
			content:  `Pythagorean theorem: \\(a^{2} + b^{2} = c^{2}\\)`,
			expected: `Pythagorean theorem: <span class="inline math">$a^{2} + b^{2} = c^{2}$</span>`,
		},
		{
			name:     "legacy block normalizes to standard delimiters",
			content:  `Euler's identity: \\[e^{i\pi} + 1 = 0\\]`,
			expected: `Euler's identity: <div class="math">$$e^{i\pi} + 1 = 0$$</div>`,
		},
		{
			name:     "multi-line inline span",
			content:  "Mathematics $a +\n b$ over multiple lines",
			expected: "Mathematics <span class=\"inline math\">$a +\n b$</span> over multiple lines",
		},
		{
			name:     "escaped dollar sign kept verbatim in block",
			content:  `$$a \$ b$$`,
			expected: `<div class="math">$$a \$ b$$</div>`,
		},
		{
			name:    "mixed conventions with surrounding text",
			content: `Start $a$ middle $$b$$ then \\(c\\) and \\[d\\] end`,
			expected: `Start <span class="inline math">$a$</span> middle ` +
				`<div class="math">$$b$$</div> then ` +
				`<span class="inline math">$c$</span> and ` +
				`<div class="math">$$d$$</div> end`,
		},
		{
			name:     "unmatched tail preserved after last span",
			content:  "$x$ trailing $ text",
			expected: `<span class="inline math">$x$</span> trailing $ text`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := RewriteMathematics(tt.content); got != tt.expected {
				t.Errorf("RewriteMathematics(%q) = %q, want %q", tt.content, got, tt.expected)
			}
		})
	}
}

func TestMathJaxRewriterHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rewriter := &MathJaxRewriter{}
	content := "Formula: $a + b$"

	if got := rewriter.RewriteMath(ctx, content); got != content {
		t.Errorf("RewriteMath with cancelled context = %q, want input unchanged", got)
	}
}

func TestMathJaxRewriterRewrites(t *testing.T) {
	t.Parallel()

	rewriter := &MathJaxRewriter{}
	got := rewriter.RewriteMath(context.Background(), "Formula: $a + b$")
	want := `Formula: <span class="inline math">$a + b$</span>`

	if got != want {
		t.Errorf("RewriteMath() = %q, want %q", got, want)
	}
}

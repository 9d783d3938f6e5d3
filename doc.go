// Package mdmath rewrites mathematical expressions in Markdown documents
// into markup that survives a markdown renderer unmangled.
//
// Inline expressions wrapped in `$`-pairs and block expressions wrapped in
// `$$`-pairs (plus the legacy `\\(..\\)` and `\\[..\\]` forms) are expanded
// into wrapper elements carrying standard MathJax delimiters:
//
//	$a^2 + b^2 = c^2$        →  <span class="inline math">$a^2 + b^2 = c^2$</span>
//	$$e^{i\pi} + 1 = 0$$     →  <div class="math">$$e^{i\pi} + 1 = 0$$</div>
//
// # Quick Start
//
// Create a transformer and rewrite content:
//
//	tr, err := mdmath.NewTransformer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rewritten := tr.Transform(ctx, "Euler: $$e^{i\\pi} + 1 = 0$$")
//
// Transform is total: every input string maps to exactly one output string,
// and content without a valid delimiter pair is returned unchanged. Dangling,
// mismatched, or unterminated delimiters are not errors; they pass through as
// literal text. The enclosed expression is treated as an opaque string: it is
// not parsed, validated, or unescaped.
//
// # Rendering
//
// RenderHTML runs the math pass and then converts the result to a standalone
// HTML5 document via Goldmark (GFM, footnotes, syntax highlighting), with the
// default math stylesheet embedded:
//
//	html, err := tr.RenderHTML(ctx, content)
//
// # Books
//
// For multi-chapter documents, build a Book and run the preprocessor over
// every chapter:
//
//	pre := mdmath.NewMathPreprocessor(tr)
//	err := pre.Run(ctx, book)
//
// Chapters are independent; the orchestrating layer may process multiple
// books or chapters in parallel since a Transformer holds no per-call state.
package mdmath

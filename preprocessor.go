package mdmath

import "context"

// Preprocessor transforms a book's chapters before rendering.
type Preprocessor interface {
	// Name identifies the preprocessor in logs and configuration.
	Name() string
	// Run rewrites the book's chapters in place.
	Run(ctx context.Context, book *Book) error
}

// MathPreprocessor expands `$`- and `$$`-pairs in every chapter into valid
// MathJax wrapper markup.
type MathPreprocessor struct {
	transformer *Transformer
}

// Compile-time interface implementation check.
var _ Preprocessor = (*MathPreprocessor)(nil)

// NewMathPreprocessor creates a MathPreprocessor backed by the given transformer.
func NewMathPreprocessor(t *Transformer) *MathPreprocessor {
	return &MathPreprocessor{transformer: t}
}

// Name returns "mathjax".
func (p *MathPreprocessor) Name() string { return "mathjax" }

// Run rewrites every chapter's content. Each chapter is independent; a
// cancelled context stops further rewriting and is reported to the caller.
func (p *MathPreprocessor) Run(ctx context.Context, book *Book) error {
	book.ForEachChapter(func(ch *Chapter) {
		ch.Content = p.transformer.Transform(ctx, ch.Content)
	})
	return ctx.Err()
}

package mdmath

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdmath/internal/assets"
	"github.com/alnah/go-mdmath/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MathRewriter  = (*pipeline.MathJaxRewriter)(nil)
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
)

// Transformer rewrites mathematics delimiters in markdown content.
// Create with NewTransformer; a Transformer holds no per-call state and is
// safe for concurrent use.
type Transformer struct {
	cfg       transformerConfig
	rewriter  pipeline.MathRewriter
	converter pipeline.HTMLConverter
}

type transformerConfig struct {
	styleName string
	styleCSS  string
}

// Option customizes a Transformer.
type Option func(*Transformer)

// WithStyle sets literal CSS embedded into rendered HTML documents,
// replacing the default math stylesheet.
func WithStyle(css string) Option {
	return func(t *Transformer) { t.cfg.styleCSS = css }
}

// WithStyleName selects a named stylesheet from the embedded assets.
func WithStyleName(name string) Option {
	return func(t *Transformer) { t.cfg.styleName = name }
}

// NewTransformer creates a Transformer with default configuration.
// Returns an error if the configured stylesheet cannot be loaded.
func NewTransformer(opts ...Option) (*Transformer, error) {
	t := &Transformer{
		cfg:      transformerConfig{styleName: assets.DefaultStyleName},
		rewriter: &pipeline.MathJaxRewriter{},
	}

	for _, opt := range opts {
		opt(t)
	}

	css := t.cfg.styleCSS
	if css == "" {
		loaded, err := assets.LoadStyle(t.cfg.styleName)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, t.cfg.styleName)
		}
		css = loaded
	}

	t.converter = pipeline.NewGoldmarkConverter(css)
	return t, nil
}

// Transform maps one section's raw content to its rewritten content.
// It is defined for every input string, including the empty string; when no
// delimiter pair is found the input is returned unchanged. A cancelled
// context short-circuits to the identity mapping.
func (t *Transformer) Transform(ctx context.Context, content string) string {
	return t.rewriter.RewriteMath(ctx, content)
}

// RenderHTML runs the mathematics pass and converts the result to a
// standalone HTML5 document with the configured stylesheet embedded.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (t *Transformer) RenderHTML(ctx context.Context, content string) (html string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if content == "" {
		return "", ErrEmptyContent
	}

	rewritten := t.rewriter.RewriteMath(ctx, content)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	html, err = t.converter.ToHTML(ctx, rewritten)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return html, nil
}

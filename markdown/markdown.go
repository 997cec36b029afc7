// Package markdown converts whole markdown documents to HTML,
// highlighting fenced code blocks along the way.
//
// Parsing and document rendering are goldmark's; this package only
// replaces goldmark's fenced code block output with the engine's
// highlighted form. Use [Converter] for one-call conversion, or
// [Extension] to install the code block renderer into an existing
// goldmark pipeline.
package markdown

import (
	"io"
	"strings"
	"sync"

	"braces.dev/errtrace"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
	"go.abhg.dev/mdcode"
	"go.abhg.dev/mdcode/syntax"
	"go.abhg.dev/mdcode/syntax/languages"
)

var _defaultLanguages = languages.New()

// Converter renders markdown documents to HTML.
// The zero value is ready to use and highlights
// with the built-in grammars.
type Converter struct {
	// Languages maps fence tags to highlighters.
	// Defaults to the built-in grammars.
	Languages *syntax.Registry

	// Math renders "math" and "mathblock" fences, if set.
	Math mdcode.MathRenderer

	once sync.Once
	md   goldmark.Markdown
}

func (c *Converter) init() {
	c.once.Do(func() {
		c.md = goldmark.New(goldmark.WithExtensions(
			Extension(c.Languages, c.Math),
		))
	})
}

// Convert renders the markdown document src into w as HTML.
func (c *Converter) Convert(src []byte, w io.Writer) error {
	c.init()
	return errtrace.Wrap(c.md.Convert(src, w))
}

// Extension builds a goldmark extension that renders fenced code
// blocks through the highlighting engine. A nil langs selects the
// built-in grammars; a nil math leaves math fences unconverted.
func Extension(langs *syntax.Registry, math mdcode.MathRenderer) goldmark.Extender {
	return &extension{langs: langs, math: math}
}

type extension struct {
	langs *syntax.Registry
	math  mdcode.MathRenderer
}

func (e *extension) Extend(md goldmark.Markdown) {
	md.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&blockRenderer{langs: e.langs, math: e.math}, 200),
	))
}

// blockRenderer renders fenced code blocks,
// overriding goldmark's built-in renderer for them.
type blockRenderer struct {
	langs *syntax.Registry
	math  mdcode.MathRenderer
}

var _ renderer.NodeRenderer = (*blockRenderer)(nil)

func (r *blockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.render)
}

func (r *blockRenderer) render(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	var tag string
	if info := n.Language(source); info != nil {
		tag = string(info)
	}

	var code strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(source))
	}

	langs := r.langs
	if langs == nil {
		langs = _defaultLanguages
	}

	var b strings.Builder
	mdcode.WriteBlock(&b, langs, r.math, tag, code.String())
	if _, err := w.WriteString(b.String()); err != nil {
		return ast.WalkStop, errtrace.Wrap(err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return ast.WalkStop, errtrace.Wrap(err)
	}
	return ast.WalkContinue, nil
}

// Package mdcode replaces fenced code blocks in a markdown event
// stream with syntax-highlighted HTML.
//
// [Preprocessor] sits between a markdown event source and a renderer.
// Code blocks whose fence tag names a known language come out as one
// [EventHTML] event holding a highlighted <pre><code> block; every
// other event passes through untouched. Unknown tags still render as
// escaped, unhighlighted blocks, so malformed or exotic input degrades
// to plain text rather than failing the document.
package mdcode

import (
	"fmt"
	"strings"

	"go.abhg.dev/mdcode/syntax"
	"go.abhg.dev/mdcode/syntax/languages"
)

// Reserved fence tags that route to the math renderer when one is set.
const (
	mathTag      = "math"
	mathBlockTag = "mathblock"
)

// DisplayStyle selects the layout of rendered math markup.
type DisplayStyle uint8

const (
	// DisplayInline renders math inline with the surrounding text.
	DisplayInline DisplayStyle = iota
	// DisplayBlock renders math as its own display block.
	DisplayBlock
)

// MathRenderer converts math source (typically LaTeX) into markup.
//
// It is an optional capability: a Preprocessor without one treats
// "math" and "mathblock" fences like any other unknown tag.
type MathRenderer interface {
	Render(src string, style DisplayStyle) (string, error)
}

var _defaultLanguages = languages.New()

// Preprocessor transforms a document event stream,
// replacing each fenced code block (three consecutive events:
// start, text, end) with a single highlighted EventHTML event.
//
// It pulls lazily: each call to Next consumes exactly one upstream
// event, plus two more when that event opens a code block.
// Preprocessors are not restartable; use one per document.
type Preprocessor struct {
	// Source is the upstream event stream.
	Source Stream

	// Languages maps fence tags to highlighters.
	// Defaults to the built-in grammars.
	Languages *syntax.Registry

	// Math renders "math" and "mathblock" fences, if set.
	Math MathRenderer
}

var _ Stream = (*Preprocessor)(nil)

// Next produces the next downstream event.
func (p *Preprocessor) Next() (Event, bool) {
	ev, ok := p.Source.Next()
	if !ok || ev.Kind != EventCodeStart {
		return ev, ok
	}

	text, okText := p.Source.Next()
	end, okEnd := p.Source.Next()
	if !okText || !okEnd || text.Kind != EventText || end.Kind != EventCodeEnd {
		var got []string
		if okText {
			got = append(got, text.String())
		}
		if okEnd {
			got = append(got, end.String())
		}
		return Event{
			Kind: EventText,
			Text: fmt.Sprintf("unexpected events after %v: [%s]",
				ev, strings.Join(got, ", ")),
		}, true
	}

	var b strings.Builder
	b.Grow(len(text.Text) + len(text.Text)/4 + 64)
	p.writeBlock(&b, ev.Info, text.Text)
	return Event{Kind: EventHTML, Text: b.String()}, true
}

func (p *Preprocessor) writeBlock(b *strings.Builder, tag, code string) {
	langs := p.Languages
	if langs == nil {
		langs = _defaultLanguages
	}
	WriteBlock(b, langs, p.Math, tag, code)
}

// WriteBlock renders one fenced code block as HTML into b.
//
// Math tags route to math when it is non-nil; a conversion failure
// renders the error text in place of the block. Every other tag
// renders a <pre><code class="language-TAG"> container holding either
// highlighted runs (tag registered in langs) or the escaped code text.
func WriteBlock(b *strings.Builder, langs *syntax.Registry, math MathRenderer, tag, code string) {
	if math != nil && (tag == mathTag || tag == mathBlockTag) {
		style := DisplayInline
		if tag == mathBlockTag {
			style = DisplayBlock
		}
		out, err := math.Render(code, style)
		if err != nil {
			syntax.Escape(b, err.Error())
			return
		}
		b.WriteString(out)
		return
	}

	b.WriteString(`<pre><code class="language-`)
	syntax.Escape(b, tag)
	b.WriteString(`">`)
	if fn, ok := langs.Lookup(tag); ok {
		fn(b, code)
	} else {
		syntax.Escape(b, code)
	}
	b.WriteString("</code></pre>")
}

package mdcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreprocessor_passthrough(t *testing.T) {
	t.Parallel()

	give := []Event{
		{Kind: EventOther, Node: 42},
		{Kind: EventText, Text: "hello"},
		{Kind: EventHTML, Text: "<hr>"},
	}

	p := Preprocessor{Source: SliceStream(give)}
	assert.Equal(t, give, Collect(&p))
}

func TestPreprocessor_highlightsBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		tag  string
		code string
		want string // payload of the emitted EventHTML
	}{
		{
			desc: "rust",
			tag:  "rust",
			code: "let x = 1;",
			want: `<pre><code class="language-rust">` +
				"<b>let</b> <var>x</var> <u>=</u> <span>1</span>;" +
				"</code></pre>",
		},
		{
			desc: "rust alias",
			tag:  "rs",
			code: "let x = 1;",
			want: `<pre><code class="language-rs">` +
				"<b>let</b> <var>x</var> <u>=</u> <span>1</span>;" +
				"</code></pre>",
		},
		{
			desc: "unrecognized tag escapes verbatim",
			tag:  "brainfuck",
			code: "a < b",
			want: `<pre><code class="language-brainfuck">a &lt; b</code></pre>`,
		},
		{
			desc: "empty tag",
			tag:  "",
			code: "plain",
			want: `<pre><code class="language-">plain</code></pre>`,
		},
		{
			desc: "capitalized tag misses the case-sensitive registry",
			tag:  "Rust",
			code: "let x = 1;",
			want: `<pre><code class="language-Rust">let x = 1;</code></pre>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			p := Preprocessor{Source: SliceStream([]Event{
				{Kind: EventOther, Node: "before"},
				{Kind: EventCodeStart, Info: tt.tag},
				{Kind: EventText, Text: tt.code},
				{Kind: EventCodeEnd},
				{Kind: EventOther, Node: "after"},
			})}

			got := Collect(&p)
			require.Len(t, got, 3, "three in-block events must become one")
			assert.Equal(t, Event{Kind: EventOther, Node: "before"}, got[0])
			assert.Equal(t, Event{Kind: EventHTML, Text: tt.want}, got[1])
			assert.Equal(t, Event{Kind: EventOther, Node: "after"}, got[2])
		})
	}
}

func TestPreprocessor_malformedBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []Event
		// number of events expected after the diagnostic
		wantRest int
	}{
		{
			desc: "two wrong events",
			give: []Event{
				{Kind: EventCodeStart, Info: "rust"},
				{Kind: EventOther, Node: "x"},
				{Kind: EventOther, Node: "y"},
				{Kind: EventText, Text: "continues"},
			},
			wantRest: 1,
		},
		{
			desc: "text then no end",
			give: []Event{
				{Kind: EventCodeStart, Info: "rust"},
				{Kind: EventText, Text: "code"},
				{Kind: EventText, Text: "more"},
			},
			wantRest: 0,
		},
		{
			desc: "stream ends after start",
			give: []Event{
				{Kind: EventCodeStart, Info: "rust"},
			},
			wantRest: 0,
		},
		{
			desc: "stream ends after text",
			give: []Event{
				{Kind: EventCodeStart, Info: "rust"},
				{Kind: EventText, Text: "code"},
			},
			wantRest: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			p := Preprocessor{Source: SliceStream(tt.give)}
			got := Collect(&p)

			require.NotEmpty(t, got)
			diag := got[0]
			assert.Equal(t, EventText, diag.Kind, "diagnostic must be a text event")
			assert.Contains(t, diag.Text, "unexpected events")
			assert.Contains(t, diag.Text, `CodeStart("rust")`)

			assert.Len(t, got[1:], tt.wantRest,
				"the stream must continue past the diagnostic")
		})
	}
}

type fakeMath struct {
	err error
}

func (m *fakeMath) Render(src string, style DisplayStyle) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	mode := "inline"
	if style == DisplayBlock {
		mode = "block"
	}
	return fmt.Sprintf("<math mode=%q>%s</math>", mode, src), nil
}

func TestPreprocessor_math(t *testing.T) {
	t.Parallel()

	block := func(tag string) []Event {
		return []Event{
			{Kind: EventCodeStart, Info: tag},
			{Kind: EventText, Text: `\frac{1}{2}`},
			{Kind: EventCodeEnd},
		}
	}

	t.Run("inline", func(t *testing.T) {
		t.Parallel()

		p := Preprocessor{Source: SliceStream(block("math")), Math: &fakeMath{}}
		got := Collect(&p)
		require.Len(t, got, 1)
		assert.Equal(t, EventHTML, got[0].Kind)
		assert.Equal(t, `<math mode="inline">\frac{1}{2}</math>`, got[0].Text)
	})

	t.Run("block", func(t *testing.T) {
		t.Parallel()

		p := Preprocessor{Source: SliceStream(block("mathblock")), Math: &fakeMath{}}
		got := Collect(&p)
		require.Len(t, got, 1)
		assert.Equal(t, `<math mode="block">\frac{1}{2}</math>`, got[0].Text)
	})

	t.Run("conversion failure renders the error", func(t *testing.T) {
		t.Parallel()

		p := Preprocessor{
			Source: SliceStream(block("math")),
			Math:   &fakeMath{err: errors.New("bad \"macro\"")},
		}
		got := Collect(&p)
		require.Len(t, got, 1)
		assert.Equal(t, EventHTML, got[0].Kind)
		assert.Equal(t, "bad &quot;macro&quot;", got[0].Text)
	})

	t.Run("no renderer falls through to a plain block", func(t *testing.T) {
		t.Parallel()

		p := Preprocessor{Source: SliceStream(block("math"))}
		got := Collect(&p)
		require.Len(t, got, 1)
		assert.Equal(t,
			`<pre><code class="language-math">\frac{1}{2}</code></pre>`,
			got[0].Text)
	})
}

// countingStream counts how many events have been pulled from it.
type countingStream struct {
	events Stream
	pulls  int
}

func (s *countingStream) Next() (Event, bool) {
	s.pulls++
	return s.events.Next()
}

func TestPreprocessor_pullsExactly(t *testing.T) {
	t.Parallel()

	t.Run("one per passthrough event", func(t *testing.T) {
		t.Parallel()

		src := countingStream{events: SliceStream([]Event{
			{Kind: EventText, Text: "a"},
			{Kind: EventOther},
		})}
		p := Preprocessor{Source: &src}

		_, ok := p.Next()
		require.True(t, ok)
		assert.Equal(t, 1, src.pulls)

		_, ok = p.Next()
		require.True(t, ok)
		assert.Equal(t, 2, src.pulls)
	})

	t.Run("three per code block", func(t *testing.T) {
		t.Parallel()

		src := countingStream{events: SliceStream([]Event{
			{Kind: EventCodeStart, Info: "toml"},
			{Kind: EventText, Text: "x = 1"},
			{Kind: EventCodeEnd},
			{Kind: EventText, Text: "after"},
		})}
		p := Preprocessor{Source: &src}

		_, ok := p.Next()
		require.True(t, ok)
		assert.Equal(t, 3, src.pulls, "a code block costs exactly three pulls")
	})
}

func TestEvent_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give Event
		want string
	}{
		{give: Event{Kind: EventCodeStart, Info: "rs"}, want: `CodeStart("rs")`},
		{give: Event{Kind: EventText, Text: "hi"}, want: `Text("hi")`},
		{give: Event{Kind: EventHTML, Text: "<hr>"}, want: `HTML("<hr>")`},
		{give: Event{Kind: EventCodeEnd}, want: "CodeEnd"},
		{give: Event{Kind: EventOther, Node: 7}, want: "Other(7)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.give.String())
	}
}

package syntax

import "strings"

// Span marks a half-open byte range [Start, End) into a source string.
type Span struct {
	Start, End int
}

// A Scanner yields the next token and its span,
// reporting false once the source is exhausted.
//
// Scanners only yield meaningful tokens. Bytes they skip over
// (whitespace, punctuation with no semantic weight) become trivia:
// the engine copies them into the output, escaped, exactly once.
type Scanner[T any] func() (tok T, span Span, ok bool)

// Language describes a grammar to the highlighting engine.
type Language[T any] struct {
	// Name is the canonical name of the language.
	Name string

	// Scan returns a fresh Scanner over src.
	// Scanners carry no state between calls to Scan.
	Scan func(src string) Scanner[T]

	// Classify decides the Kind of cur given the token before it.
	// prev is nil for the first token of the source.
	// Classify must be a pure function of its arguments.
	Classify func(prev *T, cur T) Kind
}

// Highlight renders src into b as escaped HTML,
// wrapping each run of same-Kind tokens in the tag for that Kind.
//
// The pass is O(len(src)): tokens are classified with a two-token
// window, and a cursor tracks the last byte already written so that
// every source byte is escaped exactly once. Trivia between tokens is
// flushed when the run it trails is closed, so inter-token whitespace
// stays outside the tag that opens after it.
func Highlight[T any](b *strings.Builder, lang Language[T], src string) {
	next := lang.Scan(src)

	var (
		open     Kind // kind of the currently open run
		last     int  // end of the last byte written
		prev     T
		havePrev bool
	)

	for {
		tok, span, ok := next()
		if !ok {
			break
		}

		var window *T
		if havePrev {
			window = &prev
		}
		kind := lang.Classify(window, tok)

		if kind != open {
			closeTag(b, open)
			Escape(b, src[last:span.Start])
			openTag(b, kind)
			Escape(b, src[span.Start:span.End])
			open = kind
		} else {
			// Same run: the token and the trivia before it
			// merge into the open tag.
			Escape(b, src[last:span.End])
		}

		last = span.End
		prev, havePrev = tok, true
	}

	closeTag(b, open)

	// Trailing trivia after the last token, escaped and untagged.
	Escape(b, src[last:])
}

func openTag(b *strings.Builder, k Kind) {
	if tag, ok := k.Tag(); ok {
		b.WriteByte('<')
		b.WriteString(tag)
		b.WriteByte('>')
	}
}

func closeTag(b *strings.Builder, k Kind) {
	if tag, ok := k.Tag(); ok {
		b.WriteString("</")
		b.WriteString(tag)
		b.WriteByte('>')
	}
}

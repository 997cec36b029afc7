package languages

import "go.abhg.dev/mdcode/syntax"

// Toml highlights TOML documents.
var Toml = syntax.Language[tomlToken]{
	Name:     "toml",
	Scan:     scanToml,
	Classify: tomlKind,
}

type tomlToken uint8

const (
	tomlUnknown tomlToken = iota
	tomlComment
	tomlLiteral // strings, numbers, dates, booleans
	tomlKey
	tomlLBracket // opens a table header or an array
	tomlGlyph
)

const tomlGlyphs = "]={}.,"

func scanToml(src string) syntax.Scanner[tomlToken] {
	c := &cursor{src: src}
	return func() (tomlToken, syntax.Span, bool) {
		for !c.eof() {
			start := c.pos
			b := c.peek(0)

			span := func(tok tomlToken) (tomlToken, syntax.Span, bool) {
				return tok, syntax.Span{Start: start, End: c.pos}, true
			}

			switch {
			case b == '#':
				c.lineComment()
				return span(tomlComment)

			case b == '"':
				c.quoted('"', true)
				return span(tomlLiteral)

			case b == '\'':
				c.quoted('\'', false)
				return span(tomlLiteral)

			case isDigit(b) || ((b == '+' || b == '-') && isDigit(c.peek(1))):
				if b == '+' || b == '-' {
					c.pos++
				}
				c.number()
				// Dates and times continue past the leading digits.
				for !c.eof() && inSet("0123456789-:.TZ+", c.src[c.pos]) {
					c.pos++
				}
				return span(tomlLiteral)

			case isIdentStart(b):
				word := c.word()
				// Bare keys may contain dashes.
				for c.peek(0) == '-' && isIdent(c.peek(1)) {
					c.pos++
					c.word()
					word = c.src[start:c.pos]
				}
				if word == "true" || word == "false" ||
					word == "inf" || word == "nan" {
					return span(tomlLiteral)
				}
				return span(tomlKey)

			case b == '[':
				c.pos++
				return span(tomlLBracket)

			case inSet(tomlGlyphs, b):
				c.pos++
				return span(tomlGlyph)

			default:
				c.pos++ // trivia
			}
		}
		return tomlUnknown, syntax.Span{}, false
	}
}

func tomlKind(prev *tomlToken, cur tomlToken) syntax.Kind {
	switch cur {
	case tomlComment:
		return syntax.Comment
	case tomlLiteral:
		return syntax.Literal
	case tomlKey:
		// A key right after '[' names a table.
		if prev != nil && *prev == tomlLBracket {
			return syntax.StrongIdentifier
		}
		return syntax.Identifier
	case tomlLBracket, tomlGlyph:
		return syntax.Glyph
	default:
		return syntax.None
	}
}

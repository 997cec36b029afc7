package languages

import "go.abhg.dev/mdcode/syntax"

// Rust highlights Rust source code.
var Rust = syntax.Language[rustToken]{
	Name:     "rust",
	Scan:     scanRust,
	Classify: rustKind,
}

type rustToken uint8

const (
	rustUnknown rustToken = iota
	rustComment
	rustLiteral // strings, chars, numbers, bools
	rustKeyword
	rustKeywordFn // the fn keyword; the following identifier is a declared name
	rustPrimitive
	rustLifetime
	rustMacro
	rustUpperIdent
	rustIdent
	rustGlyph
)

var rustKeywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true,
	"continue": true, "crate": true, "dyn": true, "else": true, "enum": true,
	"extern": true, "for": true, "if": true, "impl": true, "in": true,
	"let": true, "loop": true, "match": true, "mod": true, "move": true,
	"mut": true, "pub": true, "ref": true, "return": true, "self": true,
	"Self": true, "static": true, "struct": true, "super": true,
	"trait": true, "type": true, "unsafe": true, "use": true, "where": true,
	"while": true,
}

var rustPrimitives = map[string]bool{
	"bool": true, "char": true, "str": true,
	"i8": true, "i16": true, "i32": true, "i64": true, "i128": true,
	"u8": true, "u16": true, "u32": true, "u64": true, "u128": true,
	"isize": true, "usize": true, "f32": true, "f64": true,
}

const rustGlyphs = "+-*/%=<>!&|^~?@.:#$"

func scanRust(src string) syntax.Scanner[rustToken] {
	c := &cursor{src: src}
	return func() (rustToken, syntax.Span, bool) {
		for !c.eof() {
			start := c.pos
			b := c.peek(0)

			span := func(tok rustToken) (rustToken, syntax.Span, bool) {
				return tok, syntax.Span{Start: start, End: c.pos}, true
			}

			switch {
			case b == '/' && c.peek(1) == '/':
				c.lineComment()
				return span(rustComment)

			case b == '/' && c.peek(1) == '*':
				c.blockComment(true)
				return span(rustComment)

			case b == '"':
				c.quoted('"', true)
				return span(rustLiteral)

			case b == '\'':
				// A quote opens either a lifetime ('a) or a char ('x').
				if isIdentStart(c.peek(1)) && c.peek(2) != '\'' {
					c.pos++
					c.word()
					return span(rustLifetime)
				}
				c.quoted('\'', true)
				return span(rustLiteral)

			case isDigit(b):
				c.number()
				return span(rustLiteral)

			case isIdentStart(b):
				word := c.word()
				switch {
				case word == "fn":
					return span(rustKeywordFn)
				case word == "true" || word == "false":
					return span(rustLiteral)
				case rustKeywords[word]:
					return span(rustKeyword)
				case rustPrimitives[word]:
					return span(rustPrimitive)
				case c.peek(0) == '!':
					c.pos++ // the bang belongs to the macro name
					return span(rustMacro)
				case isUpper(word[0]):
					return span(rustUpperIdent)
				default:
					return span(rustIdent)
				}

			case inSet(rustGlyphs, b):
				c.pos++
				return span(rustGlyph)

			default:
				c.pos++ // trivia
			}
		}
		return rustUnknown, syntax.Span{}, false
	}
}

func rustKind(prev *rustToken, cur rustToken) syntax.Kind {
	switch cur {
	case rustComment:
		return syntax.Comment
	case rustLiteral:
		return syntax.Literal
	case rustKeyword, rustKeywordFn:
		return syntax.Keyword
	case rustPrimitive, rustLifetime, rustMacro:
		return syntax.SpecialIdentifier
	case rustUpperIdent:
		return syntax.StrongIdentifier
	case rustIdent:
		if prev != nil && *prev == rustKeywordFn {
			return syntax.StrongIdentifier
		}
		return syntax.Identifier
	case rustGlyph:
		return syntax.Glyph
	default:
		return syntax.None
	}
}

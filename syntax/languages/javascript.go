package languages

import "go.abhg.dev/mdcode/syntax"

// JavaScript highlights JavaScript source code.
var JavaScript = syntax.Language[jsToken]{
	Name:     "javascript",
	Scan:     scanJS,
	Classify: jsKind,
}

type jsToken uint8

const (
	jsUnknown jsToken = iota
	jsComment
	jsLiteral
	jsKeyword
	jsKeywordDecl // function or class; the following identifier is a declared name
	jsSpecial     // this, super
	jsUpperIdent
	jsIdent
	jsGlyph
)

var jsKeywords = map[string]bool{
	"async": true, "await": true, "break": true, "case": true, "catch": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "export": true,
	"extends": true, "finally": true, "for": true, "if": true,
	"import": true, "in": true, "instanceof": true, "let": true, "new": true,
	"of": true, "return": true, "static": true, "switch": true,
	"throw": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true, "yield": true,
}

var jsLiterals = map[string]bool{
	"true": true, "false": true, "null": true, "undefined": true,
	"NaN": true, "Infinity": true,
}

const jsGlyphs = "+-*/%=<>!&|^~?:.,;"

func scanJS(src string) syntax.Scanner[jsToken] {
	c := &cursor{src: src}
	return func() (jsToken, syntax.Span, bool) {
		for !c.eof() {
			start := c.pos
			b := c.peek(0)

			span := func(tok jsToken) (jsToken, syntax.Span, bool) {
				return tok, syntax.Span{Start: start, End: c.pos}, true
			}

			switch {
			case b == '/' && c.peek(1) == '/':
				c.lineComment()
				return span(jsComment)

			case b == '/' && c.peek(1) == '*':
				c.blockComment(false)
				return span(jsComment)

			case b == '"' || b == '\'' || b == '`':
				c.quoted(b, true)
				return span(jsLiteral)

			case isDigit(b):
				c.number()
				return span(jsLiteral)

			case isIdentStart(b) || b == '$':
				if b == '$' {
					c.pos++
				}
				word := c.word()
				switch {
				case word == "function" || word == "class":
					return span(jsKeywordDecl)
				case word == "this" || word == "super":
					return span(jsSpecial)
				case jsKeywords[word]:
					return span(jsKeyword)
				case jsLiterals[word]:
					return span(jsLiteral)
				case word != "" && isUpper(word[0]):
					return span(jsUpperIdent)
				default:
					return span(jsIdent)
				}

			case inSet(jsGlyphs, b):
				c.pos++
				return span(jsGlyph)

			default:
				c.pos++ // trivia
			}
		}
		return jsUnknown, syntax.Span{}, false
	}
}

func jsKind(prev *jsToken, cur jsToken) syntax.Kind {
	switch cur {
	case jsComment:
		return syntax.Comment
	case jsLiteral:
		return syntax.Literal
	case jsKeyword, jsKeywordDecl:
		return syntax.Keyword
	case jsSpecial:
		return syntax.SpecialIdentifier
	case jsUpperIdent:
		return syntax.StrongIdentifier
	case jsIdent:
		if prev != nil && *prev == jsKeywordDecl {
			return syntax.StrongIdentifier
		}
		return syntax.Identifier
	case jsGlyph:
		return syntax.Glyph
	default:
		return syntax.None
	}
}

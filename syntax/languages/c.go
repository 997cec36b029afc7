package languages

import "go.abhg.dev/mdcode/syntax"

// C highlights C source code.
var C = syntax.Language[cToken]{
	Name:     "c",
	Scan:     scanC,
	Classify: cKind,
}

type cToken uint8

const (
	cUnknown cToken = iota
	cComment
	cLiteral
	cKeyword
	cKeywordTag // struct, enum, union; the following identifier is a declared tag
	cType
	cPreproc // #include, #define, ...
	cFunc    // identifier followed by (
	cUpperIdent
	cIdent
	cGlyph
)

var cKeywords = map[string]bool{
	"break": true, "case": true, "const": true, "continue": true,
	"default": true, "do": true, "else": true, "extern": true, "for": true,
	"goto": true, "if": true, "inline": true, "register": true,
	"restrict": true, "return": true, "sizeof": true, "static": true,
	"switch": true, "typedef": true, "volatile": true, "while": true,
}

var cTypes = map[string]bool{
	"auto": true, "char": true, "double": true, "float": true, "int": true,
	"long": true, "short": true, "signed": true, "unsigned": true,
	"void": true, "size_t": true, "ssize_t": true, "ptrdiff_t": true,
	"int8_t": true, "int16_t": true, "int32_t": true, "int64_t": true,
	"uint8_t": true, "uint16_t": true, "uint32_t": true, "uint64_t": true,
	"uintptr_t": true, "intptr_t": true, "bool": true, "_Bool": true,
}

const cGlyphsSet = "+-*/%=<>!&|^~?:.,"

func scanC(src string) syntax.Scanner[cToken] {
	c := &cursor{src: src}
	return func() (cToken, syntax.Span, bool) {
		for !c.eof() {
			start := c.pos
			b := c.peek(0)

			span := func(tok cToken) (cToken, syntax.Span, bool) {
				return tok, syntax.Span{Start: start, End: c.pos}, true
			}

			switch {
			case b == '/' && c.peek(1) == '/':
				c.lineComment()
				return span(cComment)

			case b == '/' && c.peek(1) == '*':
				c.blockComment(false)
				return span(cComment)

			case b == '#' && isIdentStart(c.peek(1)):
				c.pos++
				c.word()
				return span(cPreproc)

			case b == '"':
				c.quoted('"', true)
				return span(cLiteral)

			case b == '\'':
				c.quoted('\'', true)
				return span(cLiteral)

			case isDigit(b):
				c.number()
				return span(cLiteral)

			case isIdentStart(b):
				word := c.word()
				switch {
				case word == "struct" || word == "enum" || word == "union":
					return span(cKeywordTag)
				case cKeywords[word]:
					return span(cKeyword)
				case cTypes[word]:
					return span(cType)
				case c.peek(0) == '(':
					return span(cFunc)
				case isUpper(word[0]):
					return span(cUpperIdent)
				default:
					return span(cIdent)
				}

			case inSet(cGlyphsSet, b):
				c.pos++
				return span(cGlyph)

			default:
				c.pos++ // trivia
			}
		}
		return cUnknown, syntax.Span{}, false
	}
}

func cKind(prev *cToken, cur cToken) syntax.Kind {
	switch cur {
	case cComment:
		return syntax.Comment
	case cLiteral:
		return syntax.Literal
	case cKeyword, cKeywordTag:
		return syntax.Keyword
	case cType, cPreproc:
		return syntax.SpecialIdentifier
	case cFunc, cUpperIdent:
		return syntax.StrongIdentifier
	case cIdent:
		if prev != nil && *prev == cKeywordTag {
			return syntax.StrongIdentifier
		}
		return syntax.Identifier
	case cGlyph:
		return syntax.Glyph
	default:
		return syntax.None
	}
}

package languages

import "go.abhg.dev/mdcode/syntax"

// Sh highlights POSIX-ish shell scripts.
//
// The scanner tracks command position itself and bakes it into the
// token it yields: the engine's window reaches only one token back,
// which cannot see across the newline trivia that ends a command.
var Sh = syntax.Language[shToken]{
	Name:     "sh",
	Scan:     scanSh,
	Classify: shKind,
}

type shToken uint8

const (
	shUnknown shToken = iota
	shComment
	shString
	shVar     // $name, ${...}, $1, $?, and NAME= assignments
	shKeyword // control words: if, then, for, ...
	shCommand // first word of a command
	shWord    // arguments
	shFlag    // -x, --long
	shGlyph
)

var shKeywords = map[string]bool{
	"case": true, "do": true, "done": true, "elif": true, "else": true,
	"esac": true, "fi": true, "for": true, "function": true, "if": true,
	"in": true, "select": true, "then": true, "time": true, "until": true,
	"while": true,
}

const shGlyphs = "|&;<>()=`"

func scanSh(src string) syntax.Scanner[shToken] {
	c := &cursor{src: src}
	atCommand := true
	return func() (shToken, syntax.Span, bool) {
		for !c.eof() {
			start := c.pos
			b := c.peek(0)

			span := func(tok shToken) (shToken, syntax.Span, bool) {
				return tok, syntax.Span{Start: start, End: c.pos}, true
			}

			switch {
			case b == '\n':
				atCommand = true
				c.pos++ // trivia

			case b == '#':
				c.lineComment()
				return span(shComment)

			case b == '"' || b == '\'':
				c.quoted(b, b == '"')
				atCommand = false
				return span(shString)

			case b == '$':
				c.pos++
				switch {
				case c.peek(0) == '{':
					for !c.eof() && c.src[c.pos] != '}' {
						c.pos++
					}
					if !c.eof() {
						c.pos++ // closing brace
					}
				case isIdentStart(c.peek(0)):
					c.word()
				case c.peek(0) != 0:
					c.pos++ // $?, $#, $1, ...
				}
				atCommand = false
				return span(shVar)

			case b == '-' && (isIdent(c.peek(1)) || c.peek(1) == '-'):
				c.pos++
				if c.peek(0) == '-' {
					c.pos++
				}
				c.word()
				atCommand = false
				return span(shFlag)

			case isIdentStart(b):
				word := c.word()
				switch {
				case shKeywords[word]:
					// Control words keep the next word in command position.
					return span(shKeyword)
				case c.peek(0) == '=':
					return span(shVar)
				case atCommand:
					atCommand = false
					return span(shCommand)
				default:
					return span(shWord)
				}

			case inSet(shGlyphs, b):
				if b == ';' || b == '|' || b == '&' || b == '`' || b == '(' {
					atCommand = true
				}
				c.pos++
				return span(shGlyph)

			default:
				c.pos++ // trivia
			}
		}
		return shUnknown, syntax.Span{}, false
	}
}

func shKind(_ *shToken, cur shToken) syntax.Kind {
	switch cur {
	case shComment:
		return syntax.Comment
	case shString:
		return syntax.Literal
	case shVar:
		return syntax.SpecialIdentifier
	case shKeyword:
		return syntax.Keyword
	case shCommand:
		return syntax.StrongIdentifier
	case shWord:
		return syntax.Identifier
	case shFlag, shGlyph:
		return syntax.Glyph
	default:
		return syntax.None
	}
}

// Package chromalang adapts Chroma lexers to the highlighting engine.
//
// The built-in grammars cover a handful of languages; chromalang opens
// the rest of Chroma's catalog to the same fixed tag vocabulary. Chroma
// token categories collapse onto the engine's [syntax.Kind] set, so a
// chroma-backed language renders with the same seven tags as the
// hand-written grammars.
package chromalang

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"go.abhg.dev/mdcode/syntax"
)

// Func returns a highlighter backed by the Chroma lexer registered
// under name (for example "go" or "python"),
// or false if Chroma has no such lexer.
func Func(name string) (syntax.Func, bool) {
	lex := lexers.Get(name)
	if lex == nil {
		return nil, false
	}
	return syntax.Bind(Language(name, lex)), true
}

// Language adapts the given Chroma lexer
// to the engine's language contract.
//
// Chroma tokens carry no spans, so the scanner reconstructs them:
// coalesced Chroma output concatenates exactly to the input,
// making a running offset sufficient.
func Language(name string, lex chroma.Lexer) syntax.Language[chroma.Token] {
	lex = chroma.Coalesce(lex)
	return syntax.Language[chroma.Token]{
		Name: name,
		Scan: func(src string) syntax.Scanner[chroma.Token] {
			it, err := lex.Tokenise(nil, src)
			if err != nil {
				// Degrade to one unstyled token covering the whole source.
				done := src == ""
				return func() (chroma.Token, syntax.Span, bool) {
					if done {
						return chroma.Token{}, syntax.Span{}, false
					}
					done = true
					tok := chroma.Token{Type: chroma.Error, Value: src}
					return tok, syntax.Span{Start: 0, End: len(src)}, true
				}
			}

			pos := 0
			return func() (chroma.Token, syntax.Span, bool) {
				tok := it()
				if tok == chroma.EOF {
					return chroma.Token{}, syntax.Span{}, false
				}
				start := pos
				pos += len(tok.Value)
				return tok, syntax.Span{Start: start, End: pos}, true
			}
		},
		Classify: func(_ *chroma.Token, cur chroma.Token) syntax.Kind {
			return kindOf(cur.Type)
		},
	}
}

// kindOf collapses Chroma's token taxonomy onto the engine's Kind set.
func kindOf(t chroma.TokenType) syntax.Kind {
	switch {
	case t.InCategory(chroma.Comment):
		return syntax.Comment
	case t == chroma.KeywordType:
		return syntax.SpecialIdentifier
	case t.InCategory(chroma.Keyword):
		return syntax.Keyword
	case t.InCategory(chroma.Literal):
		return syntax.Literal
	case t.InCategory(chroma.Operator):
		return syntax.Glyph
	case t == chroma.NameFunction, t == chroma.NameClass, t == chroma.NameNamespace:
		return syntax.StrongIdentifier
	case t == chroma.NameBuiltin, t == chroma.NameBuiltinPseudo, t == chroma.NameDecorator:
		return syntax.SpecialIdentifier
	case t.InCategory(chroma.Name):
		return syntax.Identifier
	default:
		return syntax.None
	}
}

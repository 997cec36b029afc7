// Package languages provides the built-in grammars
// for the syntax highlighting engine.
//
// Each grammar is a hand-written scanner paired with a classifier
// over the engine's two-token window. [New] builds a registry with
// every built-in grammar under its usual fence tags and aliases.
package languages

import "go.abhg.dev/mdcode/syntax"

// New returns a registry holding all built-in grammars:
// Rust, JavaScript, TOML, shell, and C.
func New() *syntax.Registry {
	reg := syntax.NewRegistry()
	reg.Register(syntax.Bind(Rust), "rust", "rs")
	reg.Register(syntax.Bind(JavaScript), "js", "javascript")
	reg.Register(syntax.Bind(Toml), "toml")
	reg.Register(syntax.Bind(Sh), "sh", "shell", "bash")
	reg.Register(syntax.Bind(C), "c")
	return reg
}

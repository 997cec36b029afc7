// Package syntax renders source code into syntax-highlighted HTML.
//
// The engine is deliberately small: a language supplies a tokenizer and a
// classification function over a two-token window, and [Highlight] walks the
// source once, wrapping each maximal run of same-[Kind] tokens in one of a
// fixed set of inline tags. Bytes between tokens pass through escaped but
// otherwise untouched, so the text content of the output always reproduces
// the input.
//
// Languages are grouped into a [Registry], which maps fence tags (including
// aliases such as "rs" for "rust") to highlighters. The built-in grammars
// live in the languages subpackage.
package syntax

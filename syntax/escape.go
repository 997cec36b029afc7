package syntax

import "strings"

// Escape appends s to b, replacing '<', '>', '&', and '"'
// with their HTML entities. All other bytes, including UTF-8
// continuation bytes, are copied through verbatim.
func Escape(b *strings.Builder, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		var ent string
		switch s[i] {
		case '<':
			ent = "&lt;"
		case '>':
			ent = "&gt;"
		case '&':
			ent = "&amp;"
		case '"':
			ent = "&quot;"
		default:
			continue
		}
		b.WriteString(s[start:i])
		b.WriteString(ent)
		start = i + 1
	}
	b.WriteString(s[start:])
}

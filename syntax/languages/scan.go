package languages

// cursor walks a source string a byte at a time.
// Grammars anchor tokens on ASCII bytes;
// multi-byte runes that start no token fall through as trivia.
type cursor struct {
	src string
	pos int
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.src)
}

// peek returns the byte at offset n from the cursor, or 0 past the end.
func (c *cursor) peek(n int) byte {
	if p := c.pos + n; p < len(c.src) {
		return c.src[p]
	}
	return 0
}

// word consumes an identifier starting at the cursor and returns it.
func (c *cursor) word() string {
	start := c.pos
	for !c.eof() && isIdent(c.src[c.pos]) {
		c.pos++
	}
	return c.src[start:c.pos]
}

// lineComment consumes up to, but not including, the next newline.
func (c *cursor) lineComment() {
	for !c.eof() && c.src[c.pos] != '\n' {
		c.pos++
	}
}

// blockComment consumes a /* ... */ comment, nesting if nested is true.
// An unterminated comment runs to the end of the source.
func (c *cursor) blockComment(nested bool) {
	c.pos += 2 // opening /*
	depth := 1
	for !c.eof() && depth > 0 {
		switch {
		case c.peek(0) == '*' && c.peek(1) == '/':
			depth--
			c.pos += 2
		case nested && c.peek(0) == '/' && c.peek(1) == '*':
			depth++
			c.pos += 2
		default:
			c.pos++
		}
	}
}

// quoted consumes a string delimited by quote.
// A backslash escapes the next byte when escapes is true.
// An unterminated string runs to the end of the source.
func (c *cursor) quoted(quote byte, escapes bool) {
	c.pos++ // opening quote
	for !c.eof() {
		switch {
		case escapes && c.src[c.pos] == '\\':
			// A trailing backslash escapes nothing; stop at the end.
			c.pos = min(c.pos+2, len(c.src))
		case c.src[c.pos] == quote:
			c.pos++
			return
		default:
			c.pos++
		}
	}
}

// number consumes a numeric literal: decimal, hex, octal, or binary,
// with optional underscores, fraction, and exponent.
func (c *cursor) number() {
	if c.peek(0) == '0' && (c.peek(1) == 'x' || c.peek(1) == 'X' ||
		c.peek(1) == 'o' || c.peek(1) == 'O' ||
		c.peek(1) == 'b' || c.peek(1) == 'B') {
		c.pos += 2
		for !c.eof() && (isHex(c.src[c.pos]) || c.src[c.pos] == '_') {
			c.pos++
		}
		return
	}

	digits := func() {
		for !c.eof() && (isDigit(c.src[c.pos]) || c.src[c.pos] == '_') {
			c.pos++
		}
	}

	digits()
	if c.peek(0) == '.' && isDigit(c.peek(1)) {
		c.pos++
		digits()
	}
	if c.peek(0) == 'e' || c.peek(0) == 'E' {
		if next := c.peek(1); isDigit(next) ||
			((next == '+' || next == '-') && isDigit(c.peek(2))) {
			c.pos += 2
			digits()
		}
	}
	// Type suffixes like u32 or f64 attach to the literal.
	c.word()
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdent(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// inSet reports whether b occurs in set.
func inSet(set string, b byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}
	return false
}

package toml

import (
	"strconv"
	"strings"
)

// =========================
// Cursor
// =========================

// cursor walks a borrowed, immutable input range one byte at a time and
// keeps 1-based line/column accounting for diagnostics. There is no
// backtracking; lookahead is done with bounded peeks against the input.
type cursor struct {
	in   string
	off  int
	line int
	col  int
}

func newCursor(in string) cursor {
	return cursor{in: in, line: 1, col: 1}
}

func (c *cursor) atEnd() bool { return c.off >= len(c.in) }

func (c *cursor) peek() byte {
	if c.off >= len(c.in) {
		return 0
	}
	return c.in[c.off]
}

func (c *cursor) peekAt(n int) byte {
	if c.off+n >= len(c.in) {
		return 0
	}
	return c.in[c.off+n]
}

func (c *cursor) advance() {
	if c.off >= len(c.in) {
		return
	}
	if c.in[c.off] == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	c.off++
}

func (c *cursor) advanceN(n int) {
	for i := 0; i < n; i++ {
		c.advance()
	}
}

func (c *cursor) hasPrefix(pat string) bool {
	return strings.HasPrefix(c.in[c.off:], pat)
}

// =========================
// Byte Classification
// =========================

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isBareKeyChar(c byte) bool {
	return isAlnum(c) || c == '_' || c == '-'
}

func (p *parser) skipSpace() {
	for !p.atEnd() && isSpace(p.peek()) {
		p.advance()
	}
}

func (p *parser) skipBlanks() {
	for !p.atEnd() && (p.peek() == ' ' || p.peek() == '\t') {
		p.advance()
	}
}

// skipComment consumes up to, but not including, the line break.
func (p *parser) skipComment() {
	for !p.atEnd() && p.peek() != '\n' {
		p.advance()
	}
}

// =========================
// Keys and Strings
// =========================

func (p *parser) parseBareKey() string {
	start := p.off
	for !p.atEnd() && isBareKeyChar(p.peek()) {
		p.advance()
	}
	return p.in[start:p.off]
}

// parseBasicString consumes a basic string body after the opening quote.
// A raw newline inside the body is unterminated input, not content.
func (p *parser) parseBasicString() (string, error) {
	var str strings.Builder
	for !p.atEnd() && p.peek() != '"' && p.peek() != '\n' {
		c := p.peek()
		if c != '\\' {
			str.WriteByte(c)
			p.advance()
			continue
		}
		p.advance()
		if p.atEnd() {
			break
		}
		if err := p.decodeEscape(&str); err != nil {
			return "", err
		}
	}
	if p.atEnd() || p.peek() != '"' {
		return "", p.errf(ErrSyntax, "unterminated basic string")
	}
	p.advance()
	return str.String(), nil
}

func (p *parser) parseLiteralString() (string, error) {
	start := p.off
	for !p.atEnd() && p.peek() != '\'' && p.peek() != '\n' {
		p.advance()
	}
	if p.atEnd() || p.peek() != '\'' {
		return "", p.errf(ErrSyntax, "unterminated literal string")
	}
	s := p.in[start:p.off]
	p.advance()
	return s, nil
}

// parseMultiLineBasicString consumes a multi-line basic string body after
// the opening delimiter. A newline right after the opener is discarded.
// A backslash directly before a newline folds the line: the newline and
// all whitespace after it produce no text.
func (p *parser) parseMultiLineBasicString() (string, error) {
	var str strings.Builder
	if !p.atEnd() && p.peek() == '\n' {
		p.advance()
	}
	for !p.atEnd() && !p.hasPrefix(`"""`) {
		c := p.peek()
		if c != '\\' {
			str.WriteByte(c)
			p.advance()
			continue
		}
		if p.peekAt(1) == '\n' {
			p.advanceN(2)
			p.skipSpace()
			continue
		}
		p.advance()
		if p.atEnd() {
			break
		}
		if err := p.decodeEscape(&str); err != nil {
			return "", err
		}
	}
	if !p.hasPrefix(`"""`) {
		return "", p.errf(ErrSyntax, "unterminated multi-line basic string")
	}
	p.advanceN(3)
	return str.String(), nil
}

func (p *parser) parseMultiLineLiteralString() (string, error) {
	if !p.atEnd() && p.peek() == '\n' {
		p.advance()
	}
	start := p.off
	for !p.atEnd() && !p.hasPrefix(`'''`) {
		p.advance()
	}
	if p.atEnd() {
		return "", p.errf(ErrSyntax, "unterminated multi-line literal string")
	}
	s := p.in[start:p.off]
	p.advanceN(3)
	return s, nil
}

// =========================
// Escape Decoding
// =========================

// decodeEscape handles the byte after a backslash. The cursor sits on that
// byte on entry and past the full escape sequence on return.
func (p *parser) decodeEscape(str *strings.Builder) error {
	switch p.peek() {
	case 'b':
		str.WriteByte('\b')
	case 't':
		str.WriteByte('\t')
	case 'n':
		str.WriteByte('\n')
	case 'f':
		str.WriteByte('\f')
	case 'r':
		str.WriteByte('\r')
	case '"':
		str.WriteByte('"')
	case '\\':
		str.WriteByte('\\')
	case 'u':
		p.advance()
		return p.decodeUnicodeScalar(str, 4)
	case 'U':
		p.advance()
		return p.decodeUnicodeScalar(str, 8)
	default:
		return p.errf(ErrSyntax, "invalid escape character")
	}
	p.advance()
	return nil
}

// decodeUnicodeScalar reads exactly digits hex digits, validates the scalar
// and appends its UTF-8 encoding. Surrogates, U+FFFE, U+FFFF and anything
// past U+10FFFF are rejected.
func (p *parser) decodeUnicodeScalar(str *strings.Builder, digits int) error {
	if p.off+digits > len(p.in) {
		return p.errf(ErrUnicode, "invalid unicode scalar")
	}
	var scalar rune
	for i := 0; i < digits; i++ {
		c := p.peek()
		var v rune
		switch {
		case c >= '0' && c <= '9':
			v = rune(c - '0')
		case c >= 'a' && c <= 'f':
			v = rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = rune(c-'A') + 10
		default:
			return p.errf(ErrUnicode, "invalid unicode scalar")
		}
		scalar = scalar<<4 | v
		p.advance()
	}
	if scalar >= 0xD800 && scalar <= 0xDFFF || scalar == 0xFFFE || scalar == 0xFFFF || scalar > 0x10FFFF {
		return p.errf(ErrUnicode, "invalid unicode scalar")
	}
	str.WriteRune(scalar)
	return nil
}

// =========================
// Scalar Classification
// =========================

// parseNumberOrDate scans one bare token and classifies it as integer,
// float or date literal in a single forward pass. Base prefixes and _
// separators are stripped before conversion; date literals are kept as
// their raw text without calendar decomposition.
func (p *parser) parseNumberOrDate() (*Value, error) {
	var text strings.Builder
	kind := byte('i')
	base := 10

	// nan and inf cannot be told apart from integers by a dot, so they
	// preselect float; the letters still flow into the converter text.
	if p.hasPrefix("nan") || p.hasPrefix("inf") {
		kind = 'f'
	}
	if p.hasPrefix("+nan") || p.hasPrefix("-nan") || p.hasPrefix("+inf") || p.hasPrefix("-inf") {
		kind = 'f'
	}

	switch {
	case p.hasPrefix("0x"):
		base = 16
		p.advanceN(2)
	case p.hasPrefix("0o"):
		base = 8
		p.advanceN(2)
	case p.hasPrefix("0b"):
		base = 2
		p.advanceN(2)
	}

	var last byte
	hasExp := false
scan:
	for !p.atEnd() {
		c := p.peek()
		switch {
		case c == '+' || c == '-':
			if last == 0 || (last == 'e' || last == 'E') && !hasExp {
				if last != 0 {
					kind = 'f'
					hasExp = true
				}
				text.WriteByte(c)
			} else if c == '-' {
				// a hyphen past the sign positions marks a date, e.g. 1979-05-27
				kind = 't'
				text.WriteByte(c)
			} else {
				break scan
			}
		case isAlnum(c):
			if (c == 'e' || c == 'E') && base == 10 {
				kind = 'f'
			}
			text.WriteByte(c)
		case c == '.':
			if kind != 'i' {
				return nil, p.errf(ErrSyntax, "invalid float")
			}
			kind = 'f'
			text.WriteByte('.')
		case c == '_':
			if kind == 't' {
				return nil, p.errf(ErrSyntax, "invalid datetime")
			}
			if !isAlnum(last) {
				return nil, p.errf(ErrSyntax, "invalid integer or float")
			}
		default:
			break scan
		}
		last = c
		p.advance()
	}

	if last == '_' {
		return nil, p.errf(ErrSyntax, "invalid integer or float or datetime")
	}

	switch kind {
	case 'i':
		n, err := strconv.ParseInt(text.String(), base, 64)
		if err != nil {
			return nil, p.errf(ErrSyntax, "invalid integer")
		}
		return &Value{Type: ValueKinds.ValueInt, V: n}, nil
	case 'f':
		n, err := strconv.ParseFloat(text.String(), 64)
		if err != nil {
			return nil, p.errf(ErrSyntax, "invalid float")
		}
		return &Value{Type: ValueKinds.ValueFloat, V: n}, nil
	default:
		return &Value{Type: ValueKinds.ValueDatetime, V: text.String()}, nil
	}
}

// =========================
// Booleans
// =========================

func (p *parser) parseBool() (*Value, error) {
	if p.hasPrefix("true") && p.boolBoundary(4) {
		p.advanceN(4)
		return &Value{Type: ValueKinds.ValueBool, V: true}, nil
	}
	if p.hasPrefix("false") && p.boolBoundary(5) {
		p.advanceN(5)
		return &Value{Type: ValueKinds.ValueBool, V: false}, nil
	}
	return nil, p.errf(ErrSyntax, "invalid boolean")
}

// boolBoundary reports whether the literal of length n stands alone rather
// than prefixing a longer bare token. The same rule applies in standalone,
// array and inline table positions.
func (p *parser) boolBoundary(n int) bool {
	if p.off+n >= len(p.in) {
		return true
	}
	switch c := p.in[p.off+n]; {
	case isSpace(c):
		return true
	case c == ',' || c == ']' || c == '}' || c == '#':
		return true
	}
	return false
}

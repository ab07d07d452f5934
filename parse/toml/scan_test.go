package toml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func testParserAt(input string) *parser {
	return &parser{cursor: newCursor(input), src: "<test>"}
}

func TestCursor(t *testing.T) {
	t.Run("advance tracks line and column", func(t *testing.T) {
		c := newCursor("ab\ncd")
		require.Equal(t, 1, c.line)
		require.Equal(t, 1, c.col)
		c.advance()
		require.Equal(t, byte('b'), c.peek())
		require.Equal(t, 2, c.col)
		c.advance()
		c.advance()
		require.Equal(t, 2, c.line)
		require.Equal(t, 1, c.col)
		require.Equal(t, byte('c'), c.peek())
	})

	t.Run("peek is safe at end", func(t *testing.T) {
		c := newCursor("x")
		c.advance()
		require.True(t, c.atEnd())
		require.Equal(t, byte(0), c.peek())
		require.Equal(t, byte(0), c.peekAt(3))
		c.advance()
		require.True(t, c.atEnd())
	})

	t.Run("advanceN stops at end", func(t *testing.T) {
		c := newCursor("ab")
		c.advanceN(10)
		require.True(t, c.atEnd())
		require.Equal(t, 3, c.col)
	})

	t.Run("hasPrefix looks ahead without consuming", func(t *testing.T) {
		c := newCursor(`"""rest`)
		require.True(t, c.hasPrefix(`"""`))
		require.False(t, c.hasPrefix(`""""`))
		require.Equal(t, 0, c.off)
	})
}

func TestBareKey(t *testing.T) {
	p := testParserAt("abc-DEF_123 rest")
	require.Equal(t, "abc-DEF_123", p.parseBareKey())
	require.Equal(t, byte(' '), p.peek())
}

func TestScalarClassifier(t *testing.T) {
	ints := map[string]int64{
		"42":         42,
		"+99":        99,
		"-17":        -17,
		"007":        7,
		"1_2_3":      123,
		"0xDEADBEEF": 0xDEADBEEF,
		"0xdeadbeef": 0xdeadbeef,
		"0o755":      0o755,
		"0b1010":     10,
	}
	for src, want := range ints {
		t.Run("int "+src, func(t *testing.T) {
			v, err := testParserAt(src).parseNumberOrDate()
			require.NoError(t, err)
			require.Equal(t, ValueKinds.ValueInt, v.Type)
			require.Equal(t, want, v.V)
		})
	}

	floats := map[string]float64{
		"3.14":      3.14,
		".5":        0.5,
		"1e5":       1e5,
		"2E-3":      2e-3,
		"1_000.5e2": 100050.0,
		"+inf":      math.Inf(+1),
		"-inf":      math.Inf(-1),
		"6.626e-34": 6.626e-34,
	}
	for src, want := range floats {
		t.Run("float "+src, func(t *testing.T) {
			v, err := testParserAt(src).parseNumberOrDate()
			require.NoError(t, err)
			require.Equal(t, ValueKinds.ValueFloat, v.Type)
			require.Equal(t, want, v.V)
		})
	}

	t.Run("nan", func(t *testing.T) {
		v, err := testParserAt("nan").parseNumberOrDate()
		require.NoError(t, err)
		require.True(t, math.IsNaN(v.V.(float64)))
	})

	t.Run("date literal keeps raw text", func(t *testing.T) {
		v, err := testParserAt("1979-05-27").parseNumberOrDate()
		require.NoError(t, err)
		require.Equal(t, ValueKinds.ValueDatetime, v.Type)
		require.Equal(t, "1979-05-27", v.V)
	})

	t.Run("scan stops at the first non-token byte", func(t *testing.T) {
		p := testParserAt("123 ]")
		v, err := p.parseNumberOrDate()
		require.NoError(t, err)
		require.Equal(t, int64(123), v.V)
		require.Equal(t, byte(' '), p.peek())
	})

	bad := map[string]string{
		"1__2":                "invalid integer or float",
		"_abc":                "invalid integer or float",
		"10_":                 "invalid integer or float or datetime",
		"1.2.3":               "invalid float",
		"1979-05-27.5":        "invalid float",
		"1979-05-27_0":        "invalid datetime",
		"9223372036854775808": "invalid integer",
		"0x":                  "invalid integer",
		"0xZZ":                "invalid integer",
		"12abc":               "invalid integer",
	}
	for src, msg := range bad {
		t.Run("bad "+src, func(t *testing.T) {
			_, err := testParserAt(src).parseNumberOrDate()
			require.Error(t, err)
			require.ErrorContains(t, err, msg)
		})
	}
}

func TestBoolLiteral(t *testing.T) {
	t.Run("whitespace and closers end the literal", func(t *testing.T) {
		for _, src := range []string{"true", "true ", "true,", "true]", "true}", "true#c"} {
			v, err := testParserAt(src).parseBool()
			require.NoError(t, err, src)
			require.Equal(t, true, v.V)
		}
		v, err := testParserAt("false\n").parseBool()
		require.NoError(t, err)
		require.Equal(t, false, v.V)
	})

	t.Run("a longer bare token is rejected", func(t *testing.T) {
		for _, src := range []string{"truey", "false0", "tru", "t"} {
			_, err := testParserAt(src).parseBool()
			require.ErrorContains(t, err, "invalid boolean")
		}
	})
}

func TestBasicString(t *testing.T) {
	t.Run("consumes through the closing quote", func(t *testing.T) {
		p := testParserAt(`abc" tail`)
		s, err := p.parseBasicString()
		require.NoError(t, err)
		require.Equal(t, "abc", s)
		require.Equal(t, byte(' '), p.peek())
	})

	t.Run("raw newline is unterminated", func(t *testing.T) {
		_, err := testParserAt("abc\ndef\"").parseBasicString()
		require.ErrorContains(t, err, "unterminated basic string")
	})

	t.Run("end of input is unterminated", func(t *testing.T) {
		_, err := testParserAt("abc").parseBasicString()
		require.ErrorContains(t, err, "unterminated basic string")
		_, err = testParserAt(`abc\`).parseBasicString()
		require.ErrorContains(t, err, "unterminated basic string")
	})

	t.Run("unknown escapes are rejected", func(t *testing.T) {
		_, err := testParserAt(`a\qb"`).parseBasicString()
		require.ErrorContains(t, err, "invalid escape character")
	})
}

func TestLiteralString(t *testing.T) {
	p := testParserAt(`C:\dir' tail`)
	s, err := p.parseLiteralString()
	require.NoError(t, err)
	require.Equal(t, `C:\dir`, s)

	_, err = testParserAt("no close").parseLiteralString()
	require.ErrorContains(t, err, "unterminated literal string")
}

func TestMultiLineStrings(t *testing.T) {
	t.Run("basic keeps inner quotes and newlines", func(t *testing.T) {
		p := testParserAt("a\"b\nc\"\"\"")
		s, err := p.parseMultiLineBasicString()
		require.NoError(t, err)
		require.Equal(t, "a\"b\nc", s)
		require.True(t, p.atEnd())
	})

	t.Run("folding eats the newline and following whitespace", func(t *testing.T) {
		p := testParserAt("one \\\n \t\n  two\"\"\"")
		s, err := p.parseMultiLineBasicString()
		require.NoError(t, err)
		require.Equal(t, "one two", s)
	})

	t.Run("basic unterminated", func(t *testing.T) {
		_, err := testParserAt("never closed").parseMultiLineBasicString()
		require.ErrorContains(t, err, "unterminated multi-line basic string")
	})

	t.Run("literal drops only the leading newline", func(t *testing.T) {
		p := testParserAt("\nkeep \\n raw\n'''")
		s, err := p.parseMultiLineLiteralString()
		require.NoError(t, err)
		require.Equal(t, "keep \\n raw\n", s)
	})

	t.Run("literal unterminated", func(t *testing.T) {
		_, err := testParserAt("x''").parseMultiLineLiteralString()
		require.ErrorContains(t, err, "unterminated multi-line literal string")
	})
}

func TestUnicodeScalars(t *testing.T) {
	t.Run("valid scalars encode as utf-8", func(t *testing.T) {
		cases := map[string]string{
			`\u0041`:     "A",
			`\u00e9`:     "\u00e9",
			`\u4e2d`:     "\u4e2d",
			`\U0001F600`: "\U0001F600",
			`\U0010FFFF`: "\U0010FFFF",
		}
		for esc, want := range cases {
			s, err := testParserAt(esc + `"`).parseBasicString()
			require.NoError(t, err, esc)
			require.Equal(t, want, s)
		}
	})

	t.Run("invalid scalars are unicode errors", func(t *testing.T) {
		bad := []string{
			`\u12`,       // input ends before four digits
			`\uZZZZ`,     // not hex
			`\uD800`,     // surrogate low bound
			`\uDFFF`,     // surrogate high bound
			`\uFFFE`,
			`\uFFFF`,
			`\U00110000`, // beyond U+10FFFF
		}
		for _, esc := range bad {
			_, err := testParserAt(esc + `"`).parseBasicString()
			require.Error(t, err, esc)
			perr, ok := err.(*Error)
			require.True(t, ok)
			require.Equal(t, ErrUnicode, perr.Kind)
		}
	})
}

package min

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	eof     rune = -1
	badByte rune = -2 // a byte that is not valid UTF-8; see lexer.bad
)

type lexer struct {
	r      *bufio.Reader
	offset int
	width  int
	bad    byte
}

// read returns the next rune, or eof at the end of input. A byte that does
// not start a valid UTF-8 sequence is returned as badByte with the byte
// itself in l.bad.
func (l *lexer) read() (rune, error) {
	c, n, err := l.r.ReadRune()
	if err != nil {
		l.width = 0
		if err == io.EOF {
			return eof, nil
		}
		return eof, err
	}
	if c == utf8.RuneError && n == 1 {
		l.r.UnreadRune()
		if l.bad, err = l.r.ReadByte(); err != nil {
			return eof, err
		}
		c = badByte
	}
	l.offset, l.width = l.offset+n, n
	return c, nil
}

func (l *lexer) unread() {
	if l.width == 0 {
		return
	}
	// UnreadRune is invalid after ReadByte.
	if l.width == 1 {
		l.r.UnreadByte()
	} else {
		l.r.UnreadRune()
	}
	l.offset, l.width = l.offset-l.width, 0
}

func (l *lexer) put(b *strings.Builder, c rune) {
	if c == badByte {
		b.WriteByte(l.bad)
		return
	}
	b.WriteRune(c)
}

func (l *lexer) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("offset %d: %s", l.offset, fmt.Sprintf(format, args...))
}

// next returns the next atom in the input, or io.EOF.
func (l *lexer) next() (Atom, error) {
	for {
		c, err := l.read()
		if err != nil {
			return Atom{}, err
		}

		switch {
		case c == eof:
			return Atom{}, io.EOF
		case c == ';':
			if err := l.lineComment(); err != nil {
				return Atom{}, err
			}
		case c == '"':
			return l.quoted()
		case isSpace(c):
			// skip
		default:
			return l.word(c)
		}
	}
}

func (l *lexer) lineComment() error {
	for {
		c, err := l.read()
		if err != nil {
			return err
		}
		if c == '\n' || c == eof {
			return nil
		}
	}
}

func (l *lexer) word(first rune) (Atom, error) {
	var text strings.Builder
	l.put(&text, first)

	for {
		c, err := l.read()
		if err != nil {
			return Atom{}, err
		}
		if c == eof || isSpace(c) || c == ';' || c == '"' {
			l.unread()
			break
		}
		l.put(&text, c)
	}

	s := text.String()
	if a, ok := number(s); ok {
		return a, nil
	}
	return NewSymbol(s), nil
}

func (l *lexer) quoted() (Atom, error) {
	var s strings.Builder
	for {
		c, err := l.read()
		if err != nil {
			return Atom{}, err
		}
		switch c {
		case eof:
			return Atom{}, l.errorf("unterminated symbol literal")
		case '"':
			return NewSymbol(s.String()), nil
		case '\\':
			k, err := l.read()
			if err != nil {
				return Atom{}, err
			}
			switch k {
			case '\\', '"':
				c = k
			case 't':
				c = '\t'
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			case 'x':
				b, err := l.hexByte()
				if err != nil {
					return Atom{}, err
				}
				s.WriteByte(b)
				continue
			case eof:
				return Atom{}, l.errorf("unterminated symbol literal")
			default:
				return Atom{}, l.errorf("invalid escape sequence '\\%c'", k)
			}
		}
		l.put(&s, c)
	}
}

// hexByte reads the two hex digits of a \xHH escape.
func (l *lexer) hexByte() (byte, error) {
	var b byte
	for i := 0; i < 2; i++ {
		c, err := l.read()
		if err != nil {
			return 0, err
		}
		d, ok := hexDigit(c)
		if !ok {
			return 0, l.errorf("invalid hex escape")
		}
		b = b<<4 | d
	}
	return b, nil
}

// number parses s as an integer or a float atom. Only decimal and 0x
// integers and decimal floats are recognized; words like "inf" and "nan"
// remain symbols. Integers that do not fit in an int64 become floats.
func number(s string) (Atom, bool) {
	if !looksNumeric(s) {
		return Atom{}, false
	}

	sign, digits := "", s
	if s[0] == '+' || s[0] == '-' {
		sign, digits = s[:1], s[1:]
	}
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		i, err := strconv.ParseInt(sign+digits[2:], 16, 64)
		if err == nil {
			return NewInt(i), true
		}
		if !errors.Is(err, strconv.ErrRange) {
			return Atom{}, false
		}
		f, err := strconv.ParseFloat(sign+"0x"+digits[2:]+"p0", 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Atom{}, false
		}
		return NewFloat(f), true
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NewInt(i), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Atom{}, false
	}
	return NewFloat(f), true
}

func looksNumeric(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s != "" && s[0] == '.' {
		s = s[1:]
	}
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func hexDigit(c rune) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return byte(c - '0'), true
	case c >= 'A' && c <= 'F':
		return byte(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return byte(c-'a') + 10, true
	default:
		return 0, false
	}
}

func isSpace(c rune) bool {
	return c >= 0 && unicode.IsSpace(c)
}

package min

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

func (a Atom) write(w io.Writer) error {
	_, err := io.WriteString(w, a.String())
	return err
}

// String returns the textual form of a. Integers, finite floats, and symbols
// read back to an equal atom with Parse.
func (a Atom) String() string {
	switch a.typ {
	case IntArgument:
		return strconv.FormatInt(a.i, 10)
	case FloatArgument:
		return formatFloat(a.f)
	case SymbolArgument:
		return quoteSymbol(a.sym.String())
	case ObjectArgument:
		return a.obj.String()
	default:
		return "<none>"
	}
}

func (as Atoms) String() string {
	return EncodeToString(as)
}

// Encode writes the textual form of as to w, separating atoms with spaces.
func Encode(w io.Writer, as Atoms) error {
	for i, a := range as {
		if i > 0 {
			if _, err := w.Write([]byte(" ")); err != nil {
				return err
			}
		}
		if err := a.write(w); err != nil {
			return err
		}
	}
	return nil
}

// EncodeToString returns the textual form of as.
func EncodeToString(as Atoms) string {
	var b strings.Builder
	Encode(&b, as)
	return b.String()
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += "."
	}
	return s
}

func quoteSymbol(s string) string {
	if !needsQuote(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		c, n := utf8.DecodeRuneInString(s[i:])
		switch {
		case c == utf8.RuneError && n == 1:
			fmt.Fprintf(&b, `\x%02x`, s[i])
		case c == '"' || c == '\\':
			b.WriteByte('\\')
			b.WriteRune(c)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case isControl(c):
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteRune(c)
		}
		i += n
	}
	b.WriteByte('"')
	return b.String()
}

func needsQuote(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return true
	}
	if _, ok := number(s); ok {
		return true
	}
	for _, c := range s {
		if isSpace(c) || isControl(c) || c == '"' || c == '\\' || c == ';' {
			return true
		}
	}
	return false
}

func isControl(c rune) bool {
	return c < 0x20 || c == 0x7f
}

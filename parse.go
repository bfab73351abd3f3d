package min

import (
	"bufio"
	"io"
	"strings"
)

func ParseString(s string) (Atoms, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads whitespace-separated atoms from r until the end of input.
// Integers and floats become numeric atoms; every other word, and any
// double-quoted text, becomes a symbol.
func Parse(r io.Reader) (Atoms, error) {
	l := &lexer{r: bufio.NewReader(r)}

	as := Atoms{}
	for {
		a, err := l.next()
		if err != nil {
			if err == io.EOF {
				return as, nil
			}
			return nil, err
		}
		as = append(as, a)
	}
}

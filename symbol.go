package min

import "sync"

// Symbol is an interned string. Symbols with the same text share storage and
// compare equal with ==. The zero Symbol is the empty symbol.
type Symbol struct {
	name *string
}

var symbols sync.Map // string -> *string

// Gen returns the symbol for name, interning it on first use. Gen is safe for
// concurrent use.
func Gen(name string) Symbol {
	if name == "" {
		return Symbol{}
	}
	if p, ok := symbols.Load(name); ok {
		return Symbol{p.(*string)}
	}
	p, _ := symbols.LoadOrStore(name, &name)
	return Symbol{p.(*string)}
}

func (s Symbol) String() string {
	if s.name == nil {
		return ""
	}
	return *s.name
}

// Empty reports whether s is the empty symbol.
func (s Symbol) Empty() bool {
	return s.name == nil
}

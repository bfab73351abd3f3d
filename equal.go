package min

import "math"

// Equal reports whether a and b have the same tag and the same payload.
// Symbols are compared by identity, which for interned symbols is the same
// as comparing their text. NaN is never equal to anything.
func Equal(a, b Atom) bool {
	if a.typ != b.typ {
		return false
	}

	switch a.typ {
	case IntArgument:
		return a.i == b.i
	case FloatArgument:
		return a.f == b.f
	case SymbolArgument:
		return a.sym == b.sym
	case ObjectArgument:
		return a.obj == b.obj
	default:
		return true
	}
}

// ApproxEqual is like Equal but compares floats within a relative epsilon.
func ApproxEqual(a, b Atom, epsilon float64) bool {
	if a.typ != FloatArgument || b.typ != FloatArgument {
		return Equal(a, b)
	}

	x, y := a.f, b.f
	if x == y {
		return true
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}

	// The absolute floor keeps comparisons against zero meaningful.
	scale := math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
	return math.Abs(x-y) <= epsilon*scale
}

// Equal reports whether as and other hold equal atoms in the same order.
func (as Atoms) Equal(other Atoms) bool {
	if len(as) != len(other) {
		return false
	}
	for i, a := range as {
		if !Equal(a, other[i]) {
			return false
		}
	}
	return true
}

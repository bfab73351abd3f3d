package min

import "fmt"

// Type identifies which kind of value an Atom carries.
type Type uint8

const (
	NoArgument Type = iota
	IntArgument
	FloatArgument
	SymbolArgument
	ObjectArgument
)

func (t Type) String() string {
	switch t {
	case IntArgument:
		return "int_argument"
	case FloatArgument:
		return "float_argument"
	case SymbolArgument:
		return "symbol_argument"
	case ObjectArgument:
		return "object_argument"
	default:
		return "no_argument"
	}
}

// Object is an opaque, pointer-sized reference to a host object. The
// library never dereferences it.
type Object uintptr

func (o Object) String() string {
	return fmt.Sprintf("<object:0x%x>", uintptr(o))
}

// Integer is the set of native integer types an Atom can be built from or
// extracted to.
type Integer interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// Float is the set of native floating-point types.
type Float interface {
	float32 | float64
}

// Scalar is the set of native types that map onto a single Atom.
type Scalar interface {
	Integer | Float | string | Symbol | Object
}

// Atom is a tagged value holding an integer, a float, a symbol, or an
// object reference. Only the payload selected by the tag is set.
type Atom struct {
	typ Type
	i   int64
	f   float64
	sym Symbol
	obj Object
}

func NewInt(x int64) Atom {
	return Atom{typ: IntArgument, i: x}
}

func NewFloat(x float64) Atom {
	return Atom{typ: FloatArgument, f: x}
}

// NewSymbol interns name and returns a symbol atom for it.
func NewSymbol(name string) Atom {
	return SymbolAtom(Gen(name))
}

func SymbolAtom(s Symbol) Atom {
	return Atom{typ: SymbolArgument, sym: s}
}

func NewObject(o Object) Atom {
	return Atom{typ: ObjectArgument, obj: o}
}

// New returns the Atom for v. The tag is chosen by v's native type.
func New[T Scalar](v T) Atom {
	a, _ := atomOf(v)
	return a
}

func atomOf(v any) (Atom, bool) {
	switch v := v.(type) {
	case Atom:
		return v, true
	case int:
		return NewInt(int64(v)), true
	case int8:
		return NewInt(int64(v)), true
	case int16:
		return NewInt(int64(v)), true
	case int32:
		return NewInt(int64(v)), true
	case int64:
		return NewInt(v), true
	case uint:
		return NewInt(int64(v)), true
	case uint8:
		return NewInt(int64(v)), true
	case uint16:
		return NewInt(int64(v)), true
	case uint32:
		return NewInt(int64(v)), true
	case uint64:
		return NewInt(int64(v)), true
	case uintptr:
		return NewInt(int64(v)), true
	case float32:
		return NewFloat(float64(v)), true
	case float64:
		return NewFloat(v), true
	case string:
		return NewSymbol(v), true
	case Symbol:
		return SymbolAtom(v), true
	case Object:
		return NewObject(v), true
	default:
		return Atom{}, false
	}
}

// Type returns the atom's tag.
func (a Atom) Type() Type {
	return a.typ
}

// Get returns the payload of a as a T. T must belong to the same category as
// the atom's tag: any integer type for IntArgument, float32 or float64 for
// FloatArgument, string or Symbol for SymbolArgument, and Object for
// ObjectArgument. Any other request fails with ErrBadAtomAccess; there is no
// conversion between categories.
//
// Within the integer and float categories the payload is converted with Go's
// conversion rules, so Get[int8] on a large integer wraps.
func Get[T Scalar](a Atom) (T, error) {
	var v T
	if a.typ == NoArgument || a.typ != typeOf[T]() {
		return v, ErrBadAtomAccess
	}

	switch p := any(&v).(type) {
	case *int:
		*p = int(a.i)
	case *int8:
		*p = int8(a.i)
	case *int16:
		*p = int16(a.i)
	case *int32:
		*p = int32(a.i)
	case *int64:
		*p = a.i
	case *uint:
		*p = uint(a.i)
	case *uint8:
		*p = uint8(a.i)
	case *uint16:
		*p = uint16(a.i)
	case *uint32:
		*p = uint32(a.i)
	case *uint64:
		*p = uint64(a.i)
	case *uintptr:
		*p = uintptr(a.i)
	case *float32:
		*p = float32(a.f)
	case *float64:
		*p = a.f
	case *string:
		*p = a.sym.String()
	case *Symbol:
		*p = a.sym
	case *Object:
		*p = a.obj
	}
	return v, nil
}

// MustGet is like Get but panics if the atom does not hold a T.
func MustGet[T Scalar](a Atom) T {
	v, err := Get[T](a)
	if err != nil {
		panic(err)
	}
	return v
}

// typeOf returns the tag that values of type T are stored under.
func typeOf[T Scalar]() Type {
	var zero T
	switch any(zero).(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr:
		return IntArgument
	case float32, float64:
		return FloatArgument
	case string, Symbol:
		return SymbolArgument
	case Object:
		return ObjectArgument
	default:
		return NoArgument
	}
}

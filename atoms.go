package min

import (
	"container/list"
	"fmt"
	"iter"
)

// Atoms is an ordered list of atoms, typically the arguments of a message.
type Atoms []Atom

// Of builds an Atoms from a literal list of native values, e.g.
// Of(1, 1.2, "symbol"). It panics if a value is not a Scalar or an Atom.
func Of(vs ...any) Atoms {
	as := make(Atoms, len(vs))
	for i, v := range vs {
		a, ok := atomOf(v)
		if !ok {
			panic(fmt.Sprintf("cannot make an atom from %T", v))
		}
		as[i] = a
	}
	return as
}

// ToAtoms returns a one-element Atoms holding v.
func ToAtoms[T Scalar](v T) Atoms {
	return Atoms{New(v)}
}

// SliceToAtoms converts each element of s, in order. Arrays can be passed as
// a slice of the array.
func SliceToAtoms[S ~[]T, T Scalar](s S) Atoms {
	as := make(Atoms, len(s))
	for i, v := range s {
		as[i] = New(v)
	}
	return as
}

// SeqToAtoms converts each value produced by seq, in order. seq must be
// finite.
func SeqToAtoms[T Scalar](seq iter.Seq[T]) Atoms {
	as := Atoms{}
	for v := range seq {
		as = append(as, New(v))
	}
	return as
}

// ListValues yields the values of l front to back. It panics if an element
// is not a T.
func ListValues[T Scalar](l *list.List) iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.Front(); e != nil; e = e.Next() {
			v, ok := e.Value.(T)
			if !ok {
				panic(fmt.Sprintf("list element %T is not a %T", e.Value, v))
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FromAtoms returns a new S with one element per atom, each read with Get.
// If any atom is not a T it returns ErrBadAtomAccess and a nil S.
func FromAtoms[S ~[]T, T Scalar](as Atoms) (S, error) {
	s := make(S, 0, len(as))
	for _, a := range as {
		v, err := Get[T](a)
		if err != nil {
			return nil, err
		}
		s = append(s, v)
	}
	return s, nil
}

// FromAtomsFunc reads every atom as a T and passes the values to push in
// order. All atoms are checked first, so push is never called if any atom
// is not a T.
func FromAtomsFunc[T Scalar](as Atoms, push func(T)) error {
	vs, err := FromAtoms[[]T](as)
	if err != nil {
		return err
	}
	for _, v := range vs {
		push(v)
	}
	return nil
}

// Values yields each atom read as a T. On the first atom that is not a T it
// yields the zero T with ErrBadAtomAccess and stops.
func Values[T Scalar](as Atoms) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, a := range as {
			v, err := Get[T](a)
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Types returns the tag of each atom.
func (as Atoms) Types() []Type {
	ts := make([]Type, len(as))
	for i, a := range as {
		ts[i] = a.typ
	}
	return ts
}

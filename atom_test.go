package min

import (
	"container/list"
	"container/ring"
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ringValues(r *ring.Ring) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if r == nil {
			return
		}
		p := r
		for {
			if !yield(p.Value.(float64)) {
				return
			}
			if p = p.Next(); p == r {
				return
			}
		}
	}
}

func assertFloats(t *testing.T, as Atoms) {
	require.Len(t, as, 4)
	for _, a := range as {
		assert.Equal(t, FloatArgument, a.Type())
	}
	assert.Equal(t, 1.0, MustGet[float64](as[0]))
	assert.Equal(t, 2.0, MustGet[float64](as[1]))
	assert.InDelta(t, -3.14, MustGet[float64](as[2]), 1e-9)
	assert.Equal(t, 4.5, MustGet[float64](as[3]))
}

func TestToAtomsScalars(t *testing.T) {
	a := 4
	b := float32(6.28)
	c := Gen("foo")
	d := Object(1974)

	aa := ToAtoms(a)
	require.Len(t, aa, 1)
	assert.Equal(t, IntArgument, aa[0].Type())
	assert.Equal(t, 4, MustGet[int](aa[0]))

	bb := ToAtoms(b)
	require.Len(t, bb, 1)
	assert.Equal(t, FloatArgument, bb[0].Type())
	assert.InDelta(t, 6.28, MustGet[float64](bb[0]), 1e-6)

	cc := ToAtoms(c)
	require.Len(t, cc, 1)
	assert.Equal(t, SymbolArgument, cc[0].Type())
	assert.Equal(t, Gen("foo"), MustGet[Symbol](cc[0]))
	assert.Equal(t, "foo", MustGet[string](cc[0]))

	dd := ToAtoms(d)
	require.Len(t, dd, 1)
	assert.Equal(t, ObjectArgument, dd[0].Type())
	assert.Equal(t, Object(1974), MustGet[Object](dd[0]))

	ee := ToAtoms("bar")
	require.Len(t, ee, 1)
	assert.Equal(t, SymbolArgument, ee[0].Type())
	assert.Equal(t, "bar", MustGet[string](ee[0]))
}

func TestToAtomsContainers(t *testing.T) {
	values := []float64{1, 2.0, -3.14, 4.5}

	t.Run("slice", func(t *testing.T) {
		assertFloats(t, SliceToAtoms(values))
	})

	t.Run("list", func(t *testing.T) {
		l := list.New()
		for _, v := range values {
			l.PushBack(v)
		}
		assertFloats(t, SeqToAtoms(ListValues[float64](l)))
	})

	t.Run("ring", func(t *testing.T) {
		r := ring.New(len(values))
		for _, v := range values {
			r.Value = v
			r = r.Next()
		}
		assertFloats(t, SeqToAtoms(ringValues(r)))
	})

	t.Run("array", func(t *testing.T) {
		arr := [4]float64{1, 2.0, -3.14, 4.5}
		assertFloats(t, SliceToAtoms(arr[:]))
	})

	t.Run("seq", func(t *testing.T) {
		assertFloats(t, SeqToAtoms(slices.Values(values)))
	})

	t.Run("empty", func(t *testing.T) {
		as := SliceToAtoms([]float64{})
		assert.NotNil(t, as)
		assert.Len(t, as, 0)

		as = SeqToAtoms(slices.Values([]int(nil)))
		assert.NotNil(t, as)
		assert.Len(t, as, 0)
	})

	t.Run("ints", func(t *testing.T) {
		as := SliceToAtoms([]int32{3, -1})
		assert.Equal(t, []Type{IntArgument, IntArgument}, as.Types())
	})
}

func TestFromAtoms(t *testing.T) {
	as := Of(1.0, 2.0, -3.14, 4.5)

	dv, err := FromAtoms[[]float64](as)
	require.NoError(t, err)
	require.Len(t, dv, 4)
	assert.Equal(t, 1.0, dv[0])
	assert.Equal(t, 2.0, dv[1])
	assert.InDelta(t, -3.14, dv[2], 1e-9)
	assert.Equal(t, 4.5, dv[3])

	type samples []float32
	fv, err := FromAtoms[samples](as)
	require.NoError(t, err)
	assert.Len(t, fv, 4)
	assert.InDelta(t, -3.14, fv[2], 1e-6)

	empty, err := FromAtoms[[]int](Atoms{})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestFromAtomsMismatch(t *testing.T) {
	as := Of(1.0, 2.0, 3, 4.5)

	dv, err := FromAtoms[[]float64](as)
	assert.Nil(t, dv)
	assert.ErrorIs(t, err, ErrBadAtomAccess)
	assert.EqualError(t, err, "bad atom access")

	l := list.New()
	err = FromAtomsFunc(as, func(v float64) { l.PushBack(v) })
	assert.ErrorIs(t, err, ErrBadAtomAccess)
	assert.Equal(t, 0, l.Len())
}

func TestFromAtomsFunc(t *testing.T) {
	l := list.New()
	err := FromAtomsFunc(Of(1.0, 2.0, -3.14, 4.5), func(v float64) { l.PushBack(v) })
	require.NoError(t, err)
	assertFloats(t, SeqToAtoms(ListValues[float64](l)))
}

func TestRoundTrip(t *testing.T) {
	floats := []float64{1, 2.0, -3.14, 4.5}
	gotFloats, err := FromAtoms[[]float64](SliceToAtoms(floats))
	require.NoError(t, err)
	assert.Equal(t, floats, gotFloats)

	ints := []int64{0, -7, 1 << 40}
	gotInts, err := FromAtoms[[]int64](SliceToAtoms(ints))
	require.NoError(t, err)
	assert.Equal(t, ints, gotInts)

	syms := []string{"a", "b c", ""}
	gotSyms, err := FromAtoms[[]string](SliceToAtoms(syms))
	require.NoError(t, err)
	assert.Equal(t, syms, gotSyms)

	objs := []Object{1, 1974}
	gotObjs, err := FromAtoms[[]Object](SliceToAtoms(objs))
	require.NoError(t, err)
	assert.Equal(t, objs, gotObjs)
}

func TestValues(t *testing.T) {
	var got []int
	var errs []error
	for v, err := range Values[int](Of(1, 2, "three", 4)) {
		got = append(got, v)
		errs = append(errs, err)
	}
	assert.Equal(t, []int{1, 2, 0}, got)
	assert.Equal(t, []error{nil, nil, ErrBadAtomAccess}, errs)
}

func TestGet(t *testing.T) {
	as := Of(1, 1.2, "symbol")
	assert.Equal(t, []Type{IntArgument, FloatArgument, SymbolArgument}, as.Types())
	assert.Equal(t, 1, MustGet[int](as[0]))
	assert.InDelta(t, 1.2, MustGet[float64](as[1]), 1e-9)
	assert.Equal(t, "symbol", MustGet[string](as[2]))

	sAtom := New("symbol")
	iAtom := New(22)
	fAtom := New(22.1)

	i, err := Get[int64](iAtom)
	require.NoError(t, err)
	assert.Equal(t, int64(22), i)

	d, err := Get[float64](fAtom)
	require.NoError(t, err)
	assert.InDelta(t, 22.1, d, 1e-9)

	str, err := Get[string](sAtom)
	require.NoError(t, err)
	assert.Equal(t, "symbol", str)

	_, err = Get[float32](iAtom)
	assert.EqualError(t, err, "bad atom access")
	_, err = Get[int64](fAtom)
	assert.EqualError(t, err, "bad atom access")
	_, err = Get[int64](sAtom)
	assert.EqualError(t, err, "bad atom access")

	var bad BadAtomAccess
	assert.True(t, errors.As(err, &bad))
}

func TestGetCrossCategory(t *testing.T) {
	atoms := Atoms{NewInt(1), NewFloat(1.5), NewSymbol("x"), NewObject(7)}

	for _, a := range atoms {
		t.Run(a.Type().String(), func(t *testing.T) {
			checks := map[Type]error{}
			_, checks[IntArgument] = Get[int](a)
			_, checks[FloatArgument] = Get[float64](a)
			_, checks[SymbolArgument] = Get[string](a)
			_, checks[ObjectArgument] = Get[Object](a)

			for typ, err := range checks {
				if typ == a.Type() {
					assert.NoError(t, err, typ.String())
				} else {
					assert.ErrorIs(t, err, ErrBadAtomAccess, typ.String())
				}
			}
		})
	}
}

func TestGetZeroAtom(t *testing.T) {
	var a Atom
	assert.Equal(t, NoArgument, a.Type())
	_, err := Get[int](a)
	assert.ErrorIs(t, err, ErrBadAtomAccess)
	_, err = Get[string](a)
	assert.ErrorIs(t, err, ErrBadAtomAccess)
}

func TestMustGetPanics(t *testing.T) {
	assert.PanicsWithError(t, "bad atom access", func() {
		MustGet[float64](NewInt(22))
	})
}

func TestOf(t *testing.T) {
	as := Of(int8(1), uint16(2), float32(0.5), Gen("s"), Object(3), NewInt(4))
	assert.Equal(t, []Type{IntArgument, IntArgument, FloatArgument, SymbolArgument, ObjectArgument, IntArgument}, as.Types())

	assert.Panics(t, func() { Of(true) })
}

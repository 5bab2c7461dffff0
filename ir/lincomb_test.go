package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinCombAddZero(t *testing.T) {
	assert := require.New(t)
	l := FromVariable(Variable(1))
	sum := l.Add(Zero())
	assert.True(sum.Equal(l))
}

func TestLinCombAdd(t *testing.T) {
	assert := require.New(t)
	a := Summand(FromUint64(2), Variable(1))
	b := Summand(FromUint64(3), Variable(1))
	got := a.Add(b).IntoCanonical()
	want := Summand(FromUint64(5), Variable(1)).IntoCanonical()
	assert.True(got.Equal(want))
}

func TestLinCombSubCancels(t *testing.T) {
	assert := require.New(t)
	a := Summand(FromUint64(7), Variable(2))
	got := a.Sub(a)
	assert.True(got.IntoCanonical().Equal(Zero().IntoCanonical()))
}

func TestLinCombCanonicalDropsZeroCoefficient(t *testing.T) {
	assert := require.New(t)
	l := Summand(FromUint64(5), Variable(3)).Add(Summand(FromUint64(5).Neg(), Variable(3)))
	c := l.IntoCanonical()
	assert.Len(c.terms, 0)
}

func TestLinCombCanonicalSortsByVariable(t *testing.T) {
	assert := require.New(t)
	l := Summand(One(), Variable(5)).Add(Summand(One(), Variable(1)))
	c := l.IntoCanonical()
	assert.Len(c.terms, 2)
	assert.Equal(Variable(1), c.terms[0].Variable)
	assert.Equal(Variable(5), c.terms[1].Variable)
}

func TestLinCombDisplay(t *testing.T) {
	assert := require.New(t)
	l := Summand(FromUint64(2), Variable(1))
	assert.Equal("2 * _1", l.String())
}

func TestLinCombDisplayZero(t *testing.T) {
	assert := require.New(t)
	assert.Equal("0", Zero().String())
}

func TestLinCombFromLinear(t *testing.T) {
	assert := require.New(t)
	l := FromVariable(Variable(4))
	v, c, ok := l.TrySummand()
	assert.True(ok)
	assert.Equal(Variable(4), v)
	assert.True(c.Equal(One()))
}

func TestLinCombTryConstant(t *testing.T) {
	assert := require.New(t)
	l := FromCoeff(FromUint64(9))
	k, ok := l.TryConstant()
	assert.True(ok)
	assert.True(k.Equal(FromUint64(9)))

	notConst := FromVariable(Variable(1))
	_, ok = notConst.TryConstant()
	assert.False(ok)
}

func TestLinCombTrySummand(t *testing.T) {
	assert := require.New(t)
	l := Summand(FromUint64(2), Variable(7)).Add(Summand(FromUint64(3), Variable(7)))
	v, c, ok := l.TrySummand()
	assert.True(ok)
	assert.Equal(Variable(7), v)
	assert.True(c.Equal(FromUint64(5)))

	mixed := Summand(One(), Variable(1)).Add(Summand(One(), Variable(2)))
	_, _, ok = mixed.TrySummand()
	assert.False(ok)
}

func TestLinCombMulConstIdentity(t *testing.T) {
	assert := require.New(t)
	l := FromVariable(Variable(1))
	got := l.MulConst(One())
	assert.Equal(l.String(), got.String())
}

func TestLinCombDivConstPanicsOnZero(t *testing.T) {
	assert := require.New(t)
	assert.Panics(func() {
		FromVariable(Variable(1)).DivConst(Zero())
	})
}

func TestLinCombIsAssignee(t *testing.T) {
	assert := require.New(t)
	w := newWitness(1)
	l := FromVariable(Variable(9))
	assert.True(l.IsAssignee(w))
	w.set(Variable(9), One())
	assert.False(l.IsAssignee(w))
}

func TestLinCombEvaluatePanicsOnUnboundVariable(t *testing.T) {
	assert := require.New(t)
	assert.PanicsWithValue(&UnboundVariableError{Variable: Variable(42)}, func() {
		FromVariable(Variable(42)).Evaluate(newWitness(0))
	})
}

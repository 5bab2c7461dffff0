package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arclight-zk/ir/ir"
	"github.com/arclight-zk/ir/ir/solver"
)

func TestConditionEqNonZero(t *testing.T) {
	out, err := (solver.ConditionEq{}).Solve([]ir.Element{ir.FromUint64(5)})
	require.NoError(t, err)
	require.True(t, out[0].Equal(ir.One()))
	inv, _ := ir.FromUint64(5).Inverse()
	require.True(t, out[1].Equal(inv))
}

func TestConditionEqZero(t *testing.T) {
	out, err := (solver.ConditionEq{}).Solve([]ir.Element{ir.Zero()})
	require.NoError(t, err)
	require.True(t, out[0].IsZero())
	require.True(t, out[1].Equal(ir.One()))
}

func TestBitsRoundTrip(t *testing.T) {
	out, err := (solver.Bits{Width: 8}).Solve([]ir.Element{ir.FromUint64(42)})
	require.NoError(t, err)
	require.Len(t, out, 8)

	var recombined uint64
	for _, bit := range out {
		recombined = recombined<<1 | bit.ToBigInt().Uint64()
	}
	require.Equal(t, uint64(42), recombined)
}

func TestBitsOverflowFails(t *testing.T) {
	_, err := (solver.Bits{Width: 4}).Solve([]ir.Element{ir.FromUint64(42)})
	require.Error(t, err)
}

func TestXorTruthTable(t *testing.T) {
	cases := []struct{ x, y, want uint64 }{
		{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0},
	}
	for _, c := range cases {
		out, err := (solver.Xor{}).Solve([]ir.Element{ir.FromUint64(c.x), ir.FromUint64(c.y)})
		require.NoError(t, err)
		require.True(t, out[0].Equal(ir.FromUint64(c.want)), "xor(%d,%d)", c.x, c.y)
	}
}

func TestOrTruthTable(t *testing.T) {
	cases := []struct{ x, y, want uint64 }{
		{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 1},
	}
	for _, c := range cases {
		out, err := (solver.Or{}).Solve([]ir.Element{ir.FromUint64(c.x), ir.FromUint64(c.y)})
		require.NoError(t, err)
		require.True(t, out[0].Equal(ir.FromUint64(c.want)), "or(%d,%d)", c.x, c.y)
	}
}

func TestShaChMatchesDefinition(t *testing.T) {
	a, b, c := ir.FromUint64(1), ir.FromUint64(5), ir.FromUint64(9)
	out, err := (solver.ShaCh{}).Solve([]ir.Element{a, b, c})
	require.NoError(t, err)
	want := a.Mul(b.Sub(c)).Add(c)
	require.True(t, out[0].Equal(want))
}

func TestDivByZeroFails(t *testing.T) {
	_, err := (solver.Div{}).Solve([]ir.Element{ir.One(), ir.Zero()})
	require.ErrorIs(t, err, ir.ErrDivByZero)
}

func TestCheckArityPanicsOnMismatch(t *testing.T) {
	require.Panics(t, func() {
		_, _ = (solver.Div{}).Solve([]ir.Element{ir.One()})
	})
}

func TestFromWireRoundTrip(t *testing.T) {
	for _, s := range []solver.Solver{
		solver.ConditionEq{}, solver.Bits{Width: 16}, solver.Xor{}, solver.Or{},
		solver.ShaAndXorAndXorAnd{}, solver.ShaCh{}, solver.Div{},
	} {
		width := 0
		if b, ok := s.(solver.Bits); ok {
			width = b.Width
		}
		got, err := solver.FromWire(s.Kind(), width)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

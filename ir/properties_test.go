package ir_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/arclight-zk/ir/ir"
)

// TestCanonicalizationIsIdempotent checks IntoCanonical().LinComb().IntoCanonical()
// equals IntoCanonical() for arbitrary term lists, i.e. canonicalization is a
// projection.
func TestCanonicalizationIsIdempotent(t *testing.T) {
	props := gopter.NewProperties(nil)

	props.Property("canonicalizing twice is the same as once", prop.ForAll(
		func(coeffs []uint64, vars []uint32) bool {
			n := len(coeffs)
			if len(vars) < n {
				n = len(vars)
			}
			l := ir.Zero()
			for i := 0; i < n; i++ {
				l = l.Add(ir.Summand(ir.FromUint64(coeffs[i]), ir.Variable(vars[i]%8)))
			}
			once := l.IntoCanonical()
			twice := once.LinComb().IntoCanonical()
			return once.Equal(twice)
		},
		gen.SliceOf(gen.UInt64()),
		gen.SliceOf(gen.UInt32Range(0, 8)),
	))

	props.TestingRun(t)
}

// TestEqualityMatchesCanonicalEquality: two LinCombs built in different
// insertion orders are Equal iff their canonical forms match term-for-term.
func TestEqualityMatchesCanonicalEquality(t *testing.T) {
	props := gopter.NewProperties(nil)

	props.Property("Equal agrees with canonical term comparison", prop.ForAll(
		func(a, b uint64, v uint32) bool {
			variable := ir.Variable(v % 8)
			left := ir.Summand(ir.FromUint64(a), variable).Add(ir.Summand(ir.FromUint64(b), variable))
			right := ir.Summand(ir.FromUint64(a+b), variable)
			return left.Equal(right) == left.IntoCanonical().Equal(right.IntoCanonical())
		},
		gen.UInt64(),
		gen.UInt64(),
		gen.UInt32(),
	))

	props.TestingRun(t)
}

// TestAlgebraNormalizesThroughCanonicalization: (a+b)*v canonicalizes the
// same as a*v + b*v, for any split of a sum into two terms on one variable.
func TestAlgebraNormalizesThroughCanonicalization(t *testing.T) {
	props := gopter.NewProperties(nil)

	props.Property("splitting a coefficient across two terms canonicalizes identically", prop.ForAll(
		func(a, b uint64, v uint32) bool {
			variable := ir.Variable(v % 8)
			split := ir.Summand(ir.FromUint64(a), variable).Add(ir.Summand(ir.FromUint64(b), variable))
			whole := ir.Summand(ir.FromUint64(a).Add(ir.FromUint64(b)), variable)
			return split.IntoCanonical().Equal(whole.IntoCanonical())
		},
		gen.UInt64(),
		gen.UInt64(),
		gen.UInt32(),
	))

	props.TestingRun(t)
}

// TestFieldRoundTripsThroughBigInt: FromBigInt(ToBigInt(e)) == e for any
// element built from a uint64, and the big.Int representative always lies
// in [0, p).
func TestFieldRoundTripsThroughBigInt(t *testing.T) {
	props := gopter.NewProperties(nil)

	props.Property("round-tripping through big.Int preserves the element", prop.ForAll(
		func(v uint64) bool {
			e := ir.FromUint64(v)
			got := ir.FromBigInt(e.ToBigInt())
			return e.Equal(got)
		},
		gen.UInt64(),
	))

	props.Property("the big.Int representative is non-negative and below the modulus", prop.ForAll(
		func(v uint64) bool {
			e := ir.FromUint64(v)
			b := e.ToBigInt()
			return b.Sign() >= 0 && b.Cmp(new(big.Int).Add(ir.MaxValue().ToBigInt(), big.NewInt(1))) < 0
		},
		gen.UInt64(),
	))

	props.TestingRun(t)
}

// TestDivIsInverseOfMul: for any nonzero b, (a*b)/b == a.
func TestDivIsInverseOfMul(t *testing.T) {
	props := gopter.NewProperties(nil)

	props.Property("division undoes multiplication by a nonzero factor", prop.ForAll(
		func(a, b uint64) bool {
			if b == 0 {
				b = 1
			}
			elA, elB := ir.FromUint64(a), ir.FromUint64(b)
			product := elA.Mul(elB)
			quotient, err := product.Div(elB)
			return err == nil && quotient.Equal(elA)
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	props.TestingRun(t)
}

// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package solver implements the closed set of non-deterministic hint
// functions used by ir.Directive. Each Solver is a pure function of its
// evaluated inputs: no state, no I/O, grounded on the source's
// execute_solver match and on the hint-function pattern gnark's own
// compiler uses (hint.IsZero, hint.IthBit) to derive witness values the
// constraint system cannot assign directly.
package solver

import (
	"fmt"

	"github.com/arclight-zk/ir/ir"
)

// Kind is an alias for ir.SolverKind: the enum lives in package ir (so
// ir.Directive and ir.Statement can reference it without importing this
// package) and is reused here under its familiar name.
type Kind = ir.SolverKind

const (
	KindConditionEq        = ir.SolverConditionEq
	KindBits               = ir.SolverBits
	KindXor                = ir.SolverXor
	KindOr                 = ir.SolverOr
	KindShaAndXorAndXorAnd = ir.SolverShaAndXorAndXorAnd
	KindShaCh              = ir.SolverShaCh
	KindDiv                = ir.SolverDiv
)

// Solver is an alias for ir.Solver: the closed sum type of hint functions.
// Implementations are limited to the value types in this file; there is no
// external registration mechanism, unlike gnark's pluggable hint.Function
// registry.
type Solver = ir.Solver

// FromWire reconstructs a Solver value from its kind and, for Bits, its bit
// width. It is the inverse of Solver.Kind/Bits.WidthHint and is the
// function ir.DecodeProg expects callers to pass as solverFromWire.
func FromWire(kind Kind, width int) (Solver, error) {
	switch kind {
	case KindConditionEq:
		return ConditionEq{}, nil
	case KindBits:
		return Bits{Width: width}, nil
	case KindXor:
		return Xor{}, nil
	case KindOr:
		return Or{}, nil
	case KindShaAndXorAndXorAnd:
		return ShaAndXorAndXorAnd{}, nil
	case KindShaCh:
		return ShaCh{}, nil
	case KindDiv:
		return Div{}, nil
	default:
		return nil, fmt.Errorf("ir/solver: unknown solver kind %d", kind)
	}
}

func checkArity(s Solver, inputs []ir.Element) {
	wantIn, _ := s.Signature()
	if len(inputs) != wantIn {
		panic(fmt.Sprintf("ir/solver: %s expects %d inputs, got %d", s.Kind(), wantIn, len(inputs)))
	}
}

// ConditionEq witnesses y = (x != 0) together with its modular-inverse
// helper m: (0, 1) when x = 0, else (1, x^-1).
type ConditionEq struct{}

func (ConditionEq) Kind() Kind                 { return KindConditionEq }
func (ConditionEq) Signature() (int, int)      { return 1, 2 }
func (s ConditionEq) Solve(in []ir.Element) ([]ir.Element, error) {
	checkArity(s, in)
	x := in[0]
	if x.IsZero() {
		return []ir.Element{ir.Zero(), ir.One()}, nil
	}
	inv, err := x.Inverse()
	if err != nil {
		return nil, err
	}
	return []ir.Element{ir.One(), inv}, nil
}

// Bits greedily decomposes its input into Width big-endian bits: for i
// from Width-1 down to 0, emit 1 and subtract 2^i if 2^i <= remaining,
// else emit 0. Fails if the remainder is nonzero after Width iterations
// (the input did not fit in Width bits).
type Bits struct {
	Width int
}

func (Bits) Kind() Kind            { return KindBits }
func (b Bits) Signature() (int, int) { return 1, b.Width }

func (b Bits) Solve(in []ir.Element) ([]ir.Element, error) {
	checkArity(b, in)
	return decomposeBits(in[0], b.Width)
}

// WidthHint exposes Width for callers outside this package (codec.go's
// serializer) that need it without a type switch over every Solver kind.
func (b Bits) WidthHint() int { return b.Width }

// decomposeBits performs the greedy big-endian bit decomposition described
// by ir.DecomposeBigEndian on a field element's canonical representative.
// The decomposition itself lives in package ir (not here) so that package
// can also use it directly, without importing this package back.
func decomposeBits(x ir.Element, width int) ([]ir.Element, error) {
	return ir.DecomposeBigEndian(x.ToBigInt(), width)
}

// Xor arithmetically encodes XOR over {0,1}: x + y - 2xy.
type Xor struct{}

func (Xor) Kind() Kind            { return KindXor }
func (Xor) Signature() (int, int) { return 2, 1 }

func (s Xor) Solve(in []ir.Element) ([]ir.Element, error) {
	checkArity(s, in)
	x, y := in[0], in[1]
	two := ir.FromUint64(2)
	return []ir.Element{x.Add(y).Sub(two.Mul(x).Mul(y))}, nil
}

// Or arithmetically encodes OR over {0,1}: x + y - xy.
type Or struct{}

func (Or) Kind() Kind            { return KindOr }
func (Or) Signature() (int, int) { return 2, 1 }

func (s Or) Solve(in []ir.Element) ([]ir.Element, error) {
	checkArity(s, in)
	x, y := in[0], in[1]
	return []ir.Element{x.Add(y).Sub(x.Mul(y))}, nil
}

// ShaAndXorAndXorAnd computes the SHA majority-like composition
// b*c - (2bc - b - c)*a.
type ShaAndXorAndXorAnd struct{}

func (ShaAndXorAndXorAnd) Kind() Kind            { return KindShaAndXorAndXorAnd }
func (ShaAndXorAndXorAnd) Signature() (int, int) { return 3, 1 }

func (s ShaAndXorAndXorAnd) Solve(in []ir.Element) ([]ir.Element, error) {
	checkArity(s, in)
	a, b, c := in[0], in[1], in[2]
	two := ir.FromUint64(2)
	bc := b.Mul(c)
	inner := two.Mul(bc).Sub(b).Sub(c)
	return []ir.Element{bc.Sub(inner.Mul(a))}, nil
}

// ShaCh computes the SHA choose composition a*(b - c) + c.
type ShaCh struct{}

func (ShaCh) Kind() Kind            { return KindShaCh }
func (ShaCh) Signature() (int, int) { return 3, 1 }

func (s ShaCh) Solve(in []ir.Element) ([]ir.Element, error) {
	checkArity(s, in)
	a, b, c := in[0], in[1], in[2]
	return []ir.Element{a.Mul(b.Sub(c)).Add(c)}, nil
}

// Div computes field division a / b, failing if b = 0.
type Div struct{}

func (Div) Kind() Kind            { return KindDiv }
func (Div) Signature() (int, int) { return 2, 1 }

func (s Div) Solve(in []ir.Element) ([]ir.Element, error) {
	checkArity(s, in)
	q, err := in[0].Div(in[1])
	if err != nil {
		return nil, err
	}
	return []ir.Element{q}, nil
}

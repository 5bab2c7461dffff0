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

package ir

// QuadComb is the ordered pair (L, R) of LinCombs representing the product
// L * R. An R1CS constraint has the form Q = L where Q is a QuadComb and L
// a LinComb.
type QuadComb struct {
	Left, Right LinComb
}

// FromLinearCombinations constructs L * R.
func FromLinearCombinations(left, right LinComb) QuadComb {
	return QuadComb{Left: left, Right: right}
}

// QuadFromLinComb lifts a LinComb to 1*ONE * l.
func QuadFromLinComb(l LinComb) QuadComb {
	return FromLinearCombinations(LinOne(), l)
}

// QuadFromCoeff lifts a scalar via its LinComb coercion.
func QuadFromCoeff(k Element) QuadComb {
	return QuadFromLinComb(FromCoeff(k))
}

// TryLinear attempts to collapse L * R into a single LinComb:
//  1. if either factor is empty, the product is zero;
//  2. if L reduces to a constant k, the product is R * k;
//  3. else if R reduces to a constant k, the product is L * k;
//  4. otherwise the product is genuinely quadratic and TryLinear fails,
//     returning an empty LinComb and false; q itself is not modified.
func (q QuadComb) TryLinear() (LinComb, bool) {
	if q.Left.IsZero() || q.Right.IsZero() {
		return Zero(), true
	}
	if k, ok := q.Left.TryConstant(); ok {
		return q.Right.MulConst(k), true
	}
	if k, ok := q.Right.TryConstant(); ok {
		return q.Left.MulConst(k), true
	}
	return LinComb{}, false
}

// IntoCanonical canonicalizes each factor independently.
func (q QuadComb) IntoCanonical() CanonicalQuadComb {
	return CanonicalQuadComb{Left: q.Left.IntoCanonical(), Right: q.Right.IntoCanonical()}
}

// Equal compares two QuadCombs on their canonical pair.
func (q QuadComb) Equal(o QuadComb) bool {
	return q.IntoCanonical().Equal(o.IntoCanonical())
}

// CanonicalQuadComb is the canonical-factor view of a QuadComb, used for
// equality and hashing.
type CanonicalQuadComb struct {
	Left, Right CanonicalLinComb
}

// Equal compares two canonical pairs factor-for-factor.
func (c CanonicalQuadComb) Equal(o CanonicalQuadComb) bool {
	return c.Left.Equal(o.Left) && c.Right.Equal(o.Right)
}

// Evaluate computes L(witness) * R(witness). It panics if a referenced
// variable is missing, via LinComb.Evaluate.
func (q QuadComb) Evaluate(w Witness) Element {
	return q.Left.Evaluate(w).Mul(q.Right.Evaluate(w))
}

// Variables returns the variables referenced by both factors, in
// left-then-right stored order. See LinComb.Variables.
func (q QuadComb) Variables() []Variable {
	return append(q.Left.Variables(), q.Right.Variables()...)
}

// String renders "(L) * (R)".
func (q QuadComb) String() string {
	return "(" + q.Left.String() + ") * (" + q.Right.String() + ")"
}

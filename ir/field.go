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

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrDivByZero is returned by Element.Inverse and Element.Div when the
// divisor is zero. It is a fatal precondition violation, not part of the
// interpreter's user-visible error taxonomy (see Error in errors.go).
var ErrDivByZero = errors.New("ir: division by zero")

// RequiredBits is the canonical bit-length B = ceil(log2(p)) of the scalar
// field backing this module, BN254's Fr.
const RequiredBits = fr.Bits

// Element is a prime-field scalar. Its zero value is the field's zero.
// Element wraps gnark-crypto's fr.Element rather than reimplementing
// modular arithmetic: the field component is a thin adapter, not a new
// implementation of Montgomery multiplication.
type Element struct {
	inner fr.Element
}

// Zero returns the additive identity.
func Zero() Element { return Element{} }

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.inner.SetOne()
	return e
}

// FromUint64 builds an Element from a non-negative machine integer.
func FromUint64(v uint64) Element {
	var e Element
	e.inner.SetUint64(v)
	return e
}

// FromBigInt reduces a (possibly negative) big.Int modulo p.
func FromBigInt(v *big.Int) Element {
	var e Element
	e.inner.SetBigInt(v)
	return e
}

// ToBigInt returns the non-negative big.Int representative of e, in [0, p).
func (e Element) ToBigInt() *big.Int {
	var out big.Int
	e.inner.BigInt(&out)
	return &out
}

// MaxValue returns p - 1, the largest representable element.
func MaxValue() Element {
	mod := fr.Modulus()
	max := new(big.Int).Sub(mod, big.NewInt(1))
	return FromBigInt(max)
}

// Add returns e + o.
func (e Element) Add(o Element) Element {
	var r Element
	r.inner.Add(&e.inner, &o.inner)
	return r
}

// Sub returns e - o.
func (e Element) Sub(o Element) Element {
	var r Element
	r.inner.Sub(&e.inner, &o.inner)
	return r
}

// Mul returns e * o.
func (e Element) Mul(o Element) Element {
	var r Element
	r.inner.Mul(&e.inner, &o.inner)
	return r
}

// Neg returns -e.
func (e Element) Neg() Element {
	var r Element
	r.inner.Neg(&e.inner)
	return r
}

// Inverse returns e^-1. It returns ErrDivByZero if e is zero.
func (e Element) Inverse() (Element, error) {
	if e.IsZero() {
		return Element{}, ErrDivByZero
	}
	var r Element
	r.inner.Inverse(&e.inner)
	return r, nil
}

// Div returns e / o. It returns ErrDivByZero if o is zero.
func (e Element) Div(o Element) (Element, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv), nil
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.inner.IsZero()
}

// Equal reports whether e and o represent the same field element.
func (e Element) Equal(o Element) bool {
	return e.inner.Equal(&o.inner)
}

// Cmp provides a total, deterministic order over elements (by canonical
// big-integer representative).
func (e Element) Cmp(o Element) int {
	return e.ToBigInt().Cmp(o.ToBigInt())
}

// String renders e as a non-negative decimal string, the "compact decimal
// representation" used by LinComb.Display and the interpreter's error
// messages.
func (e Element) String() string {
	return e.ToBigInt().String()
}

// Bit returns the i-th bit (0 = least significant) of e's canonical
// representative.
func (e Element) Bit(i int) uint {
	return uint(e.ToBigInt().Bit(i))
}

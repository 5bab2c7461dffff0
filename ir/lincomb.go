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
	"strings"

	"golang.org/x/exp/slices"
)

// term is one (variable, coefficient) pair in a LinComb's stored form.
type term struct {
	Variable Variable
	Coeff    Element
}

// LinComb is a formal linear combination Σ cᵢ·vᵢ over the field. It is
// stored as an insertion-ordered term slice so the arithmetic constructors
// below are O(1) append, never a canonicalizing merge: canonical form is a
// derived view (IntoCanonical), not the storage representation. This
// mirrors the source's choice to keep LinComb a bare Vec<(FlatVariable, T)>
// and push canonicalization to the edges (equality, hashing, Display).
//
// The stored order is also the module's stable serialization order (see
// codec.go): two LinCombs that are canonically equal may still serialize
// differently if built differently, and that is by design.
type LinComb struct {
	terms []term
}

// Zero returns the empty linear combination.
func Zero() LinComb { return LinComb{} }

// IsZero reports whether the combination has no terms at all. This is a
// pre-canonicalization check: a LinComb like (v, 1), (v, -1) is not
// IsZero even though it canonicalizes to zero.
func (l LinComb) IsZero() bool { return len(l.terms) == 0 }

// LinOne returns 1 * ONE.
func LinOne() LinComb {
	return Summand(One(), ONE)
}

// Summand builds the single-term combination c * v.
func Summand(c Element, v Variable) LinComb {
	return LinComb{terms: []term{{Variable: v, Coeff: c}}}
}

// FromVariable builds 1 * v.
func FromVariable(v Variable) LinComb {
	return Summand(One(), v)
}

// FromCoeff builds k * ONE, the LinComb coercion of a bare scalar.
func FromCoeff(k Element) LinComb {
	return Summand(k, ONE)
}

// Add concatenates the term lists of l and o. The result is not
// canonicalized.
func (l LinComb) Add(o LinComb) LinComb {
	res := make([]term, 0, len(l.terms)+len(o.terms))
	res = append(res, l.terms...)
	res = append(res, o.terms...)
	return LinComb{terms: res}
}

// Sub concatenates l's terms with o's terms negated. The result is not
// canonicalized.
func (l LinComb) Sub(o LinComb) LinComb {
	res := make([]term, 0, len(l.terms)+len(o.terms))
	res = append(res, l.terms...)
	for _, t := range o.terms {
		res = append(res, term{Variable: t.Variable, Coeff: t.Coeff.Neg()})
	}
	return LinComb{terms: res}
}

// MulConst scales every coefficient by k. If k is 1, l is returned
// unmodified (no allocation), matching the source's scalar-one identity.
func (l LinComb) MulConst(k Element) LinComb {
	if k.Equal(One()) {
		return l
	}
	res := make([]term, len(l.terms))
	for i, t := range l.terms {
		res[i] = term{Variable: t.Variable, Coeff: t.Coeff.Mul(k)}
	}
	return LinComb{terms: res}
}

// DivConst divides every coefficient by k. k = 0 is a fatal precondition
// violation: it panics rather than returning an error, per the spec's
// "fatal precondition violation, not a recoverable error."
func (l LinComb) DivConst(k Element) LinComb {
	inv, err := k.Inverse()
	if err != nil {
		panic(ErrDivByZero)
	}
	return l.MulConst(inv)
}

// CanonicalLinComb is the deduplicated, zero-free, variable-sorted view of
// a LinComb: a mapping variable -> nonzero coefficient in ascending
// variable order.
type CanonicalLinComb struct {
	terms []term
}

// IntoCanonical folds l into an ordered map by variable, dropping any term
// whose accumulated coefficient becomes (or already is) zero.
func (l LinComb) IntoCanonical() CanonicalLinComb {
	acc := make(map[Variable]Element, len(l.terms))
	order := make([]Variable, 0, len(l.terms))
	for _, t := range l.terms {
		if t.Coeff.IsZero() {
			continue
		}
		cur, ok := acc[t.Variable]
		if !ok {
			acc[t.Variable] = t.Coeff
			order = append(order, t.Variable)
			continue
		}
		sum := cur.Add(t.Coeff)
		if sum.IsZero() {
			delete(acc, t.Variable)
		} else {
			acc[t.Variable] = sum
		}
	}
	slices.Sort(order)
	out := make([]term, 0, len(order))
	for _, v := range order {
		if c, ok := acc[v]; ok {
			out = append(out, term{Variable: v, Coeff: c})
			delete(acc, v)
		}
	}
	return CanonicalLinComb{terms: out}
}

// Reduce is the idempotent round-trip canonical -> LinComb.
func (l LinComb) Reduce() LinComb {
	return l.IntoCanonical().LinComb()
}

// LinComb lifts a canonical form back to a (now-canonical) LinComb value.
func (c CanonicalLinComb) LinComb() LinComb {
	terms := make([]term, len(c.terms))
	copy(terms, c.terms)
	return LinComb{terms: terms}
}

// Equal defines LinComb equality on canonical form: two LinCombs are equal
// iff their canonical forms are term-for-term equal.
func (l LinComb) Equal(o LinComb) bool {
	return l.IntoCanonical().Equal(o.IntoCanonical())
}

// Equal compares two canonical forms term-for-term.
func (c CanonicalLinComb) Equal(o CanonicalLinComb) bool {
	if len(c.terms) != len(o.terms) {
		return false
	}
	for i := range c.terms {
		if c.terms[i].Variable != o.terms[i].Variable || !c.terms[i].Coeff.Equal(o.terms[i].Coeff) {
			return false
		}
	}
	return true
}

// TryConstant attempts to reduce l to a bare scalar: it succeeds iff l is
// empty (→ 0) or every term's variable is ONE (→ the sum of coefficients).
// On failure, ok is false and k is the zero Element; l itself is not
// modified.
func (l LinComb) TryConstant() (k Element, ok bool) {
	if len(l.terms) == 0 {
		return Zero(), true
	}
	first := l.terms[0].Variable
	if first != ONE {
		return Element{}, false
	}
	sum := Zero()
	for _, t := range l.terms {
		if t.Variable != first {
			return Element{}, false
		}
		sum = sum.Add(t.Coeff)
	}
	return sum, true
}

// TrySummand attempts to reduce l to a single (variable, coefficient) pair:
// it succeeds iff every term shares the same variable. On failure, ok is
// false.
func (l LinComb) TrySummand() (v Variable, c Element, ok bool) {
	if len(l.terms) == 0 {
		return 0, Element{}, false
	}
	first := l.terms[0].Variable
	sum := Zero()
	for _, t := range l.terms {
		if t.Variable != first {
			return 0, Element{}, false
		}
		sum = sum.Add(t.Coeff)
	}
	return first, sum, true
}

// IsAssignee reports whether l has the shape `1 * v` for a variable v not
// yet present in witness. The interpreter uses this to distinguish the
// assignment form of a constraint from the checking form.
func (l LinComb) IsAssignee(w Witness) bool {
	if len(l.terms) != 1 {
		return false
	}
	t := l.terms[0]
	if !t.Coeff.Equal(One()) {
		return false
	}
	_, bound := w.Get(t.Variable)
	return !bound
}

// soleAssignee returns the single unbound variable of an assignee LinComb.
// Precondition: IsAssignee(w) is true.
func (l LinComb) soleAssignee() Variable {
	return l.terms[0].Variable
}

// Evaluate sums coefficient * witness[variable] over every term. It panics
// if any referenced variable is missing: this is the internal invariant
// violation described in §4.4, not a user-visible error.
func (l LinComb) Evaluate(w Witness) Element {
	acc := Zero()
	for _, t := range l.terms {
		val, ok := w.Get(t.Variable)
		if !ok {
			panic(&UnboundVariableError{Variable: t.Variable})
		}
		acc = acc.Add(t.Coeff.Mul(val))
	}
	return acc
}

// Variables returns the (possibly repeated) variables referenced by l's
// stored terms, in stored order. Used by the dependency scheduler
// (internal/level) to determine what a statement reads; it is not a
// canonicalized or deduplicated view.
func (l LinComb) Variables() []Variable {
	vars := make([]Variable, len(l.terms))
	for i, t := range l.terms {
		vars[i] = t.Variable
	}
	return vars
}

// String renders the canonical form as "c1 * v1 + c2 * v2 + ...", or "0"
// for the empty combination.
func (l LinComb) String() string {
	c := l.IntoCanonical()
	if len(c.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(c.terms))
	for i, t := range c.terms {
		parts[i] = t.Coeff.String() + " * " + t.Variable.String()
	}
	return strings.Join(parts, " + ")
}

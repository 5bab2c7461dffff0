package ir

import "golang.org/x/exp/slices"

// Witness is a mapping Variable -> Element, with deterministic ordered
// iteration over ascending variable id. It exists only for the duration of
// one Interpreter.Execute call: it grows monotonically as statements are
// executed and is handed back to the caller on return, never shared
// between invocations.
type Witness struct {
	values map[Variable]Element
}

// newWitness returns an empty witness with capacity for n variables.
func newWitness(n int) Witness {
	return Witness{values: make(map[Variable]Element, n)}
}

// Get returns the bound value of v, if any.
func (w Witness) Get(v Variable) (Element, bool) {
	e, ok := w.values[v]
	return e, ok
}

// set binds v to val. Precondition (enforced by callers, not here): v is
// not already bound — each Variable is assigned at most once.
func (w Witness) set(v Variable, val Element) {
	w.values[v] = val
}

// Len returns the number of bound variables.
func (w Witness) Len() int { return len(w.values) }

// Variables returns the bound variables in ascending order, the witness's
// deterministic iteration order.
func (w Witness) Variables() []Variable {
	vars := make([]Variable, 0, len(w.values))
	for v := range w.values {
		vars = append(vars, v)
	}
	slices.Sort(vars)
	return vars
}

// Equal compares two witnesses value-for-value.
func (w Witness) Equal(o Witness) bool {
	if len(w.values) != len(o.values) {
		return false
	}
	for v, e := range w.values {
		oe, ok := o.values[v]
		if !ok || !e.Equal(oe) {
			return false
		}
	}
	return true
}

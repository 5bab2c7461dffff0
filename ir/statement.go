package ir

// Statement is a tagged variant: either a Constraint or a Directive. The
// interpreter dispatches on its concrete type; there is no third variant.
type Statement interface {
	isStatement()
}

// Constraint asserts Quad = Lin over the field. If Lin has the assignment
// shape `1 * v` for an unbound v, the interpreter treats this statement as
// an assignment instead of a check (see Interpreter.Execute).
type Constraint struct {
	Quad QuadComb
	Lin  LinComb
}

func (Constraint) isStatement() {}

// NewConstraint builds a checking/assigning constraint Q = L.
func NewConstraint(q QuadComb, l LinComb) Constraint {
	return Constraint{Quad: q, Lin: l}
}

// Directive non-deterministically assigns the Outputs variables by
// evaluating Inputs under the current witness and applying Solver. Nothing
// in the interpreter verifies Outputs are later constrained — binding them
// to the circuit's required values is the compiler's obligation.
type Directive struct {
	Inputs  []QuadComb
	Solver  Solver
	Outputs []Variable
}

func (Directive) isStatement() {}

// NewDirective builds a directive, panicking if inputs/outputs don't match
// the solver's declared signature — a Prog with mismatched arity is
// malformed by construction, not a runtime condition to recover from.
func NewDirective(inputs []QuadComb, s Solver, outputs []Variable) Directive {
	wantIn, wantOut := s.Signature()
	if len(inputs) != wantIn {
		panic("ir: directive input count does not match solver signature")
	}
	if len(outputs) != wantOut {
		panic("ir: directive output count does not match solver signature")
	}
	return Directive{Inputs: inputs, Solver: s, Outputs: outputs}
}

// StatementVariables reports the variables a statement reads and writes,
// used by internal/level to build the dependency graph without running
// the interpreter. bound reports whether a variable is already bound at
// this point in program order; it lets the assignment-vs-check
// disambiguation mirror Interpreter.Execute exactly instead of
// approximating it.
func StatementVariables(s Statement, bound func(Variable) bool) (reads, writes []Variable) {
	switch st := s.(type) {
	case Constraint:
		if len(st.Lin.terms) == 1 && st.Lin.terms[0].Coeff.Equal(One()) && !bound(st.Lin.terms[0].Variable) {
			return st.Quad.Variables(), []Variable{st.Lin.terms[0].Variable}
		}
		return append(st.Quad.Variables(), st.Lin.Variables()...), nil
	case Directive:
		reads = make([]Variable, 0)
		for _, q := range st.Inputs {
			reads = append(reads, q.Variables()...)
		}
		return reads, st.Outputs
	default:
		return nil, nil
	}
}

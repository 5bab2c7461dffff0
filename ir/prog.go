package ir

// Prog is the compiled program the Interpreter consumes: an ordered list
// of argument variables (the public/private inputs, in declaration order)
// and an ordered list of statements. Prog is immutable after construction,
// so two Interpreter.Execute calls against the same Prog with different
// inputs are independent and may run concurrently without synchronization.
type Prog struct {
	Arguments  []Variable
	Statements []Statement
}

// NewProg builds a Prog from its arguments and statements. The caller
// (the external compiler) is responsible for the well-formedness
// invariants in SPEC_FULL.md §6: distinct arguments none of which is ONE,
// and every variable referenced in Statements bound before its first use.
func NewProg(arguments []Variable, statements []Statement) *Prog {
	return &Prog{Arguments: arguments, Statements: statements}
}

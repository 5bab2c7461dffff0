package ir

import "fmt"

// Error is the flat, exhaustive set of Interpreter.Execute failure kinds.
// All three are surfaced immediately and abort execution; none is
// recovered locally. An unassigned variable encountered during evaluation
// is a distinct, fatal program-construction bug signaled by a panic (see
// UnboundVariableError) rather than one of these kinds.
type Error interface {
	error
	isIRError()
}

// WrongInputCount is returned when the number of inputs passed to Execute
// does not match Prog.Arguments.
type WrongInputCount struct {
	Expected, Received int
}

func (e *WrongInputCount) isIRError() {}

func (e *WrongInputCount) Error() string {
	plural := func(n int) string {
		if n == 1 {
			return ""
		}
		return "s"
	}
	return fmt.Sprintf("Program takes %d input%s but was passed %d value%s",
		e.Expected, plural(e.Expected), e.Received, plural(e.Received))
}

// UnsatisfiedConstraint is returned when a Constraint(Q, L) statement's two
// sides evaluate to different field elements. Both sides are rendered as
// non-negative decimal strings.
type UnsatisfiedConstraint struct {
	Left, Right string
}

func (e *UnsatisfiedConstraint) isIRError() {}

func (e *UnsatisfiedConstraint) Error() string {
	return fmt.Sprintf("Expected %s to equal %s", e.Left, e.Right)
}

// SolverError is returned when a Directive's Solver aborts. Unlike the
// source (whose analogous error renders as an empty string), it carries
// the solver's own diagnostic (see §9 of SPEC_FULL.md).
type SolverError struct {
	Solver string
	Reason string
}

func (e *SolverError) isIRError() {}

func (e *SolverError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("solver %s failed", e.Solver)
	}
	return fmt.Sprintf("solver %s failed: %s", e.Solver, e.Reason)
}

// UnboundVariableError signals that LinComb.Evaluate or QuadComb.Evaluate
// was asked for the value of a variable the witness does not contain. This
// is a fatal program-construction bug — the compiler should have scheduled
// an earlier assignment — and is not part of the Error taxonomy above; it
// is only ever seen wrapped in a panic.
type UnboundVariableError struct {
	Variable Variable
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("ir: variable %s referenced before assignment", e.Variable)
}

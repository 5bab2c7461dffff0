package ir

import "fmt"

// SolverKind identifies which of the closed set of hint solvers a Directive
// uses. The concrete solver implementations live in package
// github.com/arclight-zk/ir/ir/solver; SolverKind (aliased there as
// solver.Kind) is defined here so ir itself never needs to import that
// package — Solver below is satisfied structurally.
type SolverKind uint8

const (
	SolverConditionEq SolverKind = iota
	SolverBits
	SolverXor
	SolverOr
	SolverShaAndXorAndXorAnd
	SolverShaCh
	SolverDiv
)

func (k SolverKind) String() string {
	switch k {
	case SolverConditionEq:
		return "ConditionEq"
	case SolverBits:
		return "Bits"
	case SolverXor:
		return "Xor"
	case SolverOr:
		return "Or"
	case SolverShaAndXorAndXorAnd:
		return "ShaAndXorAndXorAnd"
	case SolverShaCh:
		return "ShaCh"
	case SolverDiv:
		return "Div"
	default:
		return fmt.Sprintf("SolverKind(%d)", uint8(k))
	}
}

// Solver is a closed, pure function of evaluated Directive inputs to
// witness outputs. See package ir/solver for the fixed set of
// implementations (ConditionEq, Bits, Xor, Or, ShaAndXorAndXorAnd, ShaCh,
// Div).
type Solver interface {
	Kind() SolverKind
	Signature() (inputs, outputs int)
	Solve(inputs []Element) ([]Element, error)
}

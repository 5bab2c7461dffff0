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
	"math/big"

	"github.com/arclight-zk/ir/internal/irlog"
)

// Config holds Interpreter options.
type Config struct {
	// ShouldTryOutOfRange enables targeted testing of `<` flattening by
	// deliberately producing out-of-range bit decompositions for Bits
	// directives whose input is not a single summand. Production runs
	// never set this.
	ShouldTryOutOfRange bool
}

// Interpreter evaluates a Prog against a list of input field values,
// producing a Witness or a typed Error. Execution is strictly
// single-threaded and sequential: statement order is the only order.
type Interpreter struct {
	config Config
}

// NewInterpreter returns an Interpreter with the given configuration.
func NewInterpreter(cfg Config) Interpreter {
	return Interpreter{config: cfg}
}

// TryOutOfRange returns an Interpreter configured to exercise the
// out-of-range bit solver.
func TryOutOfRange() Interpreter {
	return NewInterpreter(Config{ShouldTryOutOfRange: true})
}

// Execute binds inputs to prog's arguments and runs every statement in
// order, returning the accumulated witness on success.
func (interp Interpreter) Execute(prog *Prog, inputs []Element) (Witness, error) {
	log := irlog.Logger().With().
		Int("nbArguments", len(prog.Arguments)).
		Int("nbStatements", len(prog.Statements)).
		Logger()

	if len(inputs) != len(prog.Arguments) {
		err := &WrongInputCount{Expected: len(prog.Arguments), Received: len(inputs)}
		log.Error().Err(err).Msg("wrong input count")
		return Witness{}, err
	}

	w := newWitness(len(prog.Arguments) + len(prog.Statements) + 1)
	w.set(ONE, One())
	for i, arg := range prog.Arguments {
		w.set(arg, inputs[i])
	}

	log.Debug().Msg("executing program")

	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case Constraint:
			if s.Lin.IsAssignee(w) {
				val := s.Quad.Evaluate(w)
				w.set(s.Lin.soleAssignee(), val)
				continue
			}
			lhs := s.Quad.Evaluate(w)
			rhs := s.Lin.Evaluate(w)
			if !lhs.Equal(rhs) {
				err := &UnsatisfiedConstraint{Left: lhs.String(), Right: rhs.String()}
				log.Error().Err(err).Msg("unsatisfied constraint")
				return Witness{}, err
			}
		case Directive:
			// (len(L) > 1 || len(R) > 1) && bitwidth == B, explicitly
			// parenthesized per SPEC_FULL.md §4.4/§9: the source mixes ||
			// and && without parentheses in a way that is easy to misread.
			//
			// Bits-ness and width are probed via SolverKind and the same
			// interface{ WidthHint() int } codec.go uses, rather than a
			// concrete ir/solver.Bits type assertion: ir/solver already
			// imports ir, so ir importing ir/solver back would be a cycle.
			if width, ok := s.Solver.(interface{ WidthHint() int }); ok &&
				s.Solver.Kind() == SolverBits &&
				interp.config.ShouldTryOutOfRange &&
				width.WidthHint() == RequiredBits &&
				(len(s.Inputs[0].Left.terms) > 1 || len(s.Inputs[0].Right.terms) > 1) {
				interp.solveOutOfRange(s, w)
				continue
			}

			evaluated := make([]Element, len(s.Inputs))
			for i, q := range s.Inputs {
				evaluated[i] = q.Evaluate(w)
			}
			res, err := s.Solver.Solve(evaluated)
			if err != nil {
				serr := &SolverError{Solver: s.Solver.Kind().String(), Reason: err.Error()}
				log.Error().Err(serr).Msg("solver aborted")
				return Witness{}, serr
			}
			for i, o := range s.Outputs {
				w.set(o, res[i])
			}
		}
	}

	log.Debug().Int("nbBound", w.Len()).Msg("program executed")
	return w, nil
}

// solveOutOfRange implements the test-only out-of-range bit solver
// (SPEC_FULL.md §4.5). It is reachable only when Config.ShouldTryOutOfRange
// is set, and is the only place the interpreter performs arithmetic
// outside the field.
func (interp Interpreter) solveOutOfRange(d Directive, w Witness) {
	value := d.Inputs[0].Evaluate(w)

	candidate := new(big.Int).Add(value.ToBigInt(), MaxValue().ToBigInt())
	candidate.Add(candidate, big.NewInt(1))

	limit := new(big.Int).Lsh(big.NewInt(1), uint(RequiredBits))
	var input *big.Int
	if candidate.Cmp(limit) < 0 {
		input = candidate
	} else {
		input = value.ToBigInt()
	}

	bits, err := DecomposeBigEndian(input, RequiredBits)
	if err != nil {
		panic(err)
	}
	for i, o := range d.Outputs {
		w.set(o, bits[i])
	}
}

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
	"fmt"
	"io"
	"math/big"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"
)

// FormatVersion is the semantic version of the wire format EncodeProg and
// EncodeWitness produce. DecodeProg/DecodeWitness reject a payload whose
// major version differs, the same compatibility contract the teacher's
// own generated backends imply (this repo has no equivalent of gnark's
// "Code generated... DO NOT EDIT" cbor structs, so the check is explicit
// here instead of implicit in hand-maintained generated code).
var FormatVersion = semver.MustParse("1.0.0")

// wireTerm is a LinComb term on the wire: a variable id and its
// coefficient rendered as a decimal string (matching the Field contract's
// "conversions to decimal ... are used ... for error messages", reused
// here for the one place outside error messages a decimal string is
// useful: a human-diffable wire format).
type wireTerm struct {
	Variable uint32
	Coeff    string
}

type wireLinComb struct {
	Terms []wireTerm
}

type wireQuadComb struct {
	Left, Right wireLinComb
}

// wireStatement carries both Statement variants in one struct; exactly one
// of the constraint fields or the directive fields is populated, selected
// by Tag. This is the stable serialized representation required by
// SPEC_FULL.md §6: each LinComb serializes in stored (not canonical)
// order.
type wireStatement struct {
	Tag uint8 // 0 = Constraint, 1 = Directive

	// Constraint
	Quad wireQuadComb
	Lin  wireLinComb

	// Directive
	Inputs      []wireQuadComb
	SolverKind  SolverKind
	SolverWidth int // only meaningful when SolverKind == SolverBits
	Outputs     []uint32
}

type wireProg struct {
	FormatVersion string
	Arguments     []uint32
	Statements    []wireStatement
}

func toWireLinComb(l LinComb) wireLinComb {
	terms := make([]wireTerm, len(l.terms))
	for i, t := range l.terms {
		terms[i] = wireTerm{Variable: uint32(t.Variable), Coeff: t.Coeff.String()}
	}
	return wireLinComb{Terms: terms}
}

func fromWireLinComb(w wireLinComb) (LinComb, error) {
	terms := make([]term, len(w.Terms))
	for i, t := range w.Terms {
		v, ok := new(big.Int).SetString(t.Coeff, 10)
		if !ok {
			return LinComb{}, fmt.Errorf("ir: invalid coefficient %q", t.Coeff)
		}
		terms[i] = term{Variable: Variable(t.Variable), Coeff: FromBigInt(v)}
	}
	return LinComb{terms: terms}, nil
}

func toWireQuadComb(q QuadComb) wireQuadComb {
	return wireQuadComb{Left: toWireLinComb(q.Left), Right: toWireLinComb(q.Right)}
}

func fromWireQuadComb(w wireQuadComb) (QuadComb, error) {
	l, err := fromWireLinComb(w.Left)
	if err != nil {
		return QuadComb{}, err
	}
	r, err := fromWireLinComb(w.Right)
	if err != nil {
		return QuadComb{}, err
	}
	return QuadComb{Left: l, Right: r}, nil
}

// EncodeProg writes p to w in the module's stable CBOR wire format,
// grounded on the teacher's SparseR1CS.WriteTo (deterministic core CBOR
// encoding via cbor.CoreDetEncOptions).
func EncodeProg(w io.Writer, p *Prog) (int64, error) {
	wp := wireProg{
		FormatVersion: FormatVersion.String(),
		Arguments:     make([]uint32, len(p.Arguments)),
	}
	for i, a := range p.Arguments {
		wp.Arguments[i] = uint32(a)
	}
	wp.Statements = make([]wireStatement, len(p.Statements))
	for i, s := range p.Statements {
		switch st := s.(type) {
		case Constraint:
			wp.Statements[i] = wireStatement{Tag: 0, Quad: toWireQuadComb(st.Quad), Lin: toWireLinComb(st.Lin)}
		case Directive:
			inputs := make([]wireQuadComb, len(st.Inputs))
			for j, q := range st.Inputs {
				inputs[j] = toWireQuadComb(q)
			}
			outputs := make([]uint32, len(st.Outputs))
			for j, o := range st.Outputs {
				outputs[j] = uint32(o)
			}
			width := 0
			if b, ok := st.Solver.(interface{ WidthHint() int }); ok {
				width = b.WidthHint()
			}
			wp.Statements[i] = wireStatement{
				Tag: 1, Inputs: inputs, SolverKind: st.Solver.Kind(),
				SolverWidth: width, Outputs: outputs,
			}
		default:
			return 0, fmt.Errorf("ir: unknown statement type %T", s)
		}
	}

	counter := &countingWriter{w: w}
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return 0, err
	}
	if err := enc.NewEncoder(counter).Encode(wp); err != nil {
		return 0, err
	}
	return counter.n, nil
}

// DecodeProg reads a Prog previously written by EncodeProg. solverFromWire
// reconstructs a concrete Solver from its kind and bit width (package
// ir/solver provides one; ir itself has no solver implementations to
// avoid an import cycle with ir/solver, which depends on ir.Element).
func DecodeProg(r io.Reader, solverFromWire func(kind SolverKind, width int) (Solver, error)) (*Prog, error) {
	dm, err := cbor.DecOptions{MaxArrayElements: 1 << 20, MaxMapPairs: 1 << 20}.DecMode()
	if err != nil {
		return nil, err
	}
	var wp wireProg
	if err := dm.NewDecoder(r).Decode(&wp); err != nil {
		return nil, err
	}

	v, err := semver.Parse(wp.FormatVersion)
	if err != nil {
		return nil, fmt.Errorf("ir: invalid format version %q: %w", wp.FormatVersion, err)
	}
	if v.Major != FormatVersion.Major {
		return nil, fmt.Errorf("ir: incompatible format version %s (expected major %d)", v, FormatVersion.Major)
	}

	args := make([]Variable, len(wp.Arguments))
	for i, a := range wp.Arguments {
		args[i] = Variable(a)
	}

	stmts := make([]Statement, len(wp.Statements))
	for i, ws := range wp.Statements {
		switch ws.Tag {
		case 0:
			quad, err := fromWireQuadComb(ws.Quad)
			if err != nil {
				return nil, err
			}
			lin, err := fromWireLinComb(ws.Lin)
			if err != nil {
				return nil, err
			}
			stmts[i] = Constraint{Quad: quad, Lin: lin}
		case 1:
			inputs := make([]QuadComb, len(ws.Inputs))
			for j, wq := range ws.Inputs {
				q, err := fromWireQuadComb(wq)
				if err != nil {
					return nil, err
				}
				inputs[j] = q
			}
			outputs := make([]Variable, len(ws.Outputs))
			for j, o := range ws.Outputs {
				outputs[j] = Variable(o)
			}
			s, err := solverFromWire(ws.SolverKind, ws.SolverWidth)
			if err != nil {
				return nil, err
			}
			stmts[i] = Directive{Inputs: inputs, Solver: s, Outputs: outputs}
		default:
			return nil, fmt.Errorf("ir: unknown statement tag %d", ws.Tag)
		}
	}

	return &Prog{Arguments: args, Statements: stmts}, nil
}

// wireWitnessEntry is one Witness binding on the wire.
type wireWitnessEntry struct {
	Variable uint32
	Value    string
}

type wireWitness struct {
	FormatVersion string
	Entries       []wireWitnessEntry
}

// EncodeWitness writes w to out as an ordered slice of (Variable, decimal
// string) pairs, ascending by variable id (Witness's own deterministic
// iteration order).
func EncodeWitness(out io.Writer, w Witness) (int64, error) {
	vars := w.Variables()
	ww := wireWitness{FormatVersion: FormatVersion.String(), Entries: make([]wireWitnessEntry, len(vars))}
	for i, v := range vars {
		val, _ := w.Get(v)
		ww.Entries[i] = wireWitnessEntry{Variable: uint32(v), Value: val.String()}
	}

	counter := &countingWriter{w: out}
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return 0, err
	}
	if err := enc.NewEncoder(counter).Encode(ww); err != nil {
		return 0, err
	}
	return counter.n, nil
}

// DecodeWitness reads a Witness previously written by EncodeWitness.
func DecodeWitness(r io.Reader) (Witness, error) {
	dm, err := cbor.DecOptions{MaxArrayElements: 1 << 20, MaxMapPairs: 1 << 20}.DecMode()
	if err != nil {
		return Witness{}, err
	}
	var ww wireWitness
	if err := dm.NewDecoder(r).Decode(&ww); err != nil {
		return Witness{}, err
	}

	v, err := semver.Parse(ww.FormatVersion)
	if err != nil {
		return Witness{}, fmt.Errorf("ir: invalid format version %q: %w", ww.FormatVersion, err)
	}
	if v.Major != FormatVersion.Major {
		return Witness{}, fmt.Errorf("ir: incompatible format version %s (expected major %d)", v, FormatVersion.Major)
	}

	w := newWitness(len(ww.Entries))
	for _, e := range ww.Entries {
		val, ok := new(big.Int).SetString(e.Value, 10)
		if !ok {
			return Witness{}, fmt.Errorf("ir: invalid witness value %q", e.Value)
		}
		w.set(Variable(e.Variable), FromBigInt(val))
	}
	return w, nil
}

// countingWriter wraps an io.Writer to count bytes written, mirroring the
// teacher's ioutils.WriterCounter.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

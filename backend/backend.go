// Copyright 2020 ConsenSys AG
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

// Package backend names the boundary between the IR/witness layer and a
// proof system: something that consumes a satisfied ir.Prog plus its
// ir.Witness and produces a succinct proof of knowledge, the way
// groth16.Prove/Verify consume a compiled R1CS and a witness vector.
// Proof generation, trusted setup, and pairing-based verification are
// explicitly out of this module's scope; this file exists only to give
// that boundary a name and a shape future backends (Groth16, PLONK, ...)
// could implement against, mirroring the source's groth16Object contract
// (CurveID, WriterTo/ReaderFrom) without any of the curve-specific
// machinery behind it.
package backend

import (
	"errors"
	"io"

	"github.com/arclight-zk/ir/ir"
)

// ErrNotImplemented is returned by every method of the stub Prover: this
// package documents the proof-system boundary, it does not cross it.
var ErrNotImplemented = errors.New("backend: proof generation is outside this module's scope")

// Proof is the boundary object a Prover produces: opaque to the IR layer,
// but required to be serializable, mirroring groth16Object.
type Proof interface {
	io.WriterTo
	io.ReaderFrom
}

// ProvingKey and VerifyingKey stand in for the setup artifacts a real
// proof system needs; the IR layer never constructs or inspects one.
type ProvingKey interface {
	io.WriterTo
	io.ReaderFrom
}

type VerifyingKey interface {
	io.WriterTo
	io.ReaderFrom
}

// Prover is what an external proof system must implement to consume this
// module's output. Setup takes a satisfied Prog (the compiler's output,
// after the IR has confirmed it is well-formed); Prove takes the Prog
// together with the Witness Interpreter.Execute produced for it.
type Prover interface {
	Setup(prog *ir.Prog) (ProvingKey, VerifyingKey, error)
	Prove(prog *ir.Prog, w ir.Witness, pk ProvingKey) (Proof, error)
	Verify(proof Proof, vk VerifyingKey, publicInputs []ir.Element) error
}

// Unimplemented is a Prover that rejects every call. It exists so callers
// that want to wire a Prover-shaped dependency through their stack (e.g. a
// CLI flag selecting a backend) have a concrete zero value before a real
// proof system is plugged in.
type Unimplemented struct{}

func (Unimplemented) Setup(*ir.Prog) (ProvingKey, VerifyingKey, error) {
	return nil, nil, ErrNotImplemented
}

func (Unimplemented) Prove(*ir.Prog, ir.Witness, ProvingKey) (Proof, error) {
	return nil, ErrNotImplemented
}

func (Unimplemented) Verify(Proof, VerifyingKey, []ir.Element) error {
	return ErrNotImplemented
}

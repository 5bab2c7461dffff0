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

// Command irrun loads a CBOR-encoded program, binds inputs parsed from the
// command line, executes it, and reports the resulting witness or failure.
// It is the only place in this module that touches os.Args, file handles,
// or os.Exit: the IR core (package ir) is otherwise side-effect-free.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/rs/zerolog"

	"github.com/arclight-zk/ir/internal/irlog"
	"github.com/arclight-zk/ir/internal/level"
	"github.com/arclight-zk/ir/internal/profilereport"
	"github.com/arclight-zk/ir/ir"
	"github.com/arclight-zk/ir/ir/solver"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("irrun", flag.ContinueOnError)
	progPath := fs.String("prog", "", "path to a CBOR-encoded program (see ir.EncodeProg)")
	verbose := fs.Bool("v", false, "emit debug-level logs")
	outOfRange := fs.Bool("try-out-of-range", false, "enable the test-only out-of-range bit solver")
	profilePath := fs.String("profile", "", "write a pprof profile of the program's dependency levels to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *progPath == "" {
		return fmt.Errorf("irrun: -prog is required")
	}

	if *verbose {
		irlog.Set(irlog.Logger().Level(zerolog.DebugLevel))
	}

	inputs, err := parseInputs(fs.Args())
	if err != nil {
		return err
	}

	f, err := os.Open(*progPath)
	if err != nil {
		return fmt.Errorf("irrun: opening program: %w", err)
	}
	defer f.Close()

	prog, err := ir.DecodeProg(f, solver.FromWire)
	if err != nil {
		return fmt.Errorf("irrun: decoding program: %w", err)
	}

	if *profilePath != "" {
		if err := writeProfile(*profilePath, prog); err != nil {
			return fmt.Errorf("irrun: writing profile: %w", err)
		}
	}

	interp := ir.NewInterpreter(ir.Config{ShouldTryOutOfRange: *outOfRange})
	w, err := interp.Execute(prog, inputs)
	if err != nil {
		return fmt.Errorf("irrun: %w", err)
	}

	for _, v := range w.Variables() {
		val, _ := w.Get(v)
		fmt.Printf("%s = %s\n", v, val)
	}
	return nil
}

func writeProfile(path string, prog *ir.Prog) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	g := level.Build(prog)
	return profilereport.Write(f, g)
}

func parseInputs(args []string) ([]ir.Element, error) {
	inputs := make([]ir.Element, len(args))
	for i, a := range args {
		v, ok := new(big.Int).SetString(a, 10)
		if !ok {
			return nil, fmt.Errorf("irrun: invalid decimal input %q", a)
		}
		inputs[i] = ir.FromBigInt(v)
	}
	return inputs, nil
}

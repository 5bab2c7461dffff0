package ir_test

import (
	"bytes"
	"testing"

	"github.com/blang/semver/v4"
	"github.com/stretchr/testify/require"

	"github.com/arclight-zk/ir/ir"
	"github.com/arclight-zk/ir/ir/solver"
)

func buildSampleProg() *ir.Prog {
	assign := ir.NewConstraint(ir.QuadFromCoeff(ir.FromUint64(11)), ir.FromVariable(ir.Variable(1)))
	directive := ir.NewDirective(
		[]ir.QuadComb{ir.QuadFromLinComb(ir.FromVariable(ir.Variable(1)))},
		solver.Bits{Width: 8},
		[]ir.Variable{2, 3, 4, 5, 6, 7, 8, 9},
	)
	check := ir.NewConstraint(
		ir.FromLinearCombinations(ir.FromVariable(ir.Variable(1)), ir.LinOne()),
		ir.FromVariable(ir.Variable(1)),
	)
	return ir.NewProg([]ir.Variable{10}, []ir.Statement{assign, directive, check})
}

func TestCodecProgRoundTrip(t *testing.T) {
	prog := buildSampleProg()

	var buf bytes.Buffer
	n, err := ir.EncodeProg(&buf, prog)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	decoded, err := ir.DecodeProg(&buf, solver.FromWire)
	require.NoError(t, err)

	require.Equal(t, prog.Arguments, decoded.Arguments)
	require.Len(t, decoded.Statements, len(prog.Statements))

	interp := ir.NewInterpreter(ir.Config{})
	wOrig, err := interp.Execute(prog, []ir.Element{ir.FromUint64(99)})
	require.NoError(t, err)
	wDecoded, err := interp.Execute(decoded, []ir.Element{ir.FromUint64(99)})
	require.NoError(t, err)
	require.True(t, wOrig.Equal(wDecoded))
}

func TestCodecWitnessRoundTrip(t *testing.T) {
	prog := buildSampleProg()
	interp := ir.NewInterpreter(ir.Config{})
	w, err := interp.Execute(prog, []ir.Element{ir.FromUint64(5)})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = ir.EncodeWitness(&buf, w)
	require.NoError(t, err)

	decoded, err := ir.DecodeWitness(&buf)
	require.NoError(t, err)
	require.True(t, w.Equal(decoded))
}

func TestCodecRejectsIncompatibleMajorVersion(t *testing.T) {
	prog := buildSampleProg()
	var buf bytes.Buffer
	_, err := ir.EncodeProg(&buf, prog)
	require.NoError(t, err)

	// Corrupting the payload's version string is awkward against a binary
	// CBOR stream, so this instead exercises the version check directly
	// through a witness payload built with a future major version.
	var buf2 bytes.Buffer
	origVersion := ir.FormatVersion
	ir.FormatVersion = semver.MustParse("2.0.0")
	w, _ := interpExecute(prog)
	_, err = ir.EncodeWitness(&buf2, w)
	require.NoError(t, err)
	ir.FormatVersion = origVersion

	_, err = ir.DecodeWitness(&buf2)
	require.Error(t, err)
}

func interpExecute(prog *ir.Prog) (ir.Witness, error) {
	interp := ir.NewInterpreter(ir.Config{})
	return interp.Execute(prog, []ir.Element{ir.FromUint64(1)})
}

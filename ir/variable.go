package ir

import "fmt"

// Variable is an opaque identity for a wire in the constraint system. It is
// a dense, ascending index assigned by the external compiler; the IR core
// never allocates one itself except for the distinguished ONE.
type Variable uint32

// ONE is the distinguished variable whose witness value is always 1. The
// interpreter seeds it before executing any statement.
const ONE Variable = 0

// String renders a variable the way the source renders flat variables:
// "_<id>", with ONE spelled out for readability in error messages and
// Display output.
func (v Variable) String() string {
	if v == ONE {
		return "~one"
	}
	return fmt.Sprintf("_%d", uint32(v))
}

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
	"math/big"
)

// DecomposeBigEndian greedily decomposes num into width big-endian bits:
// for i from width-1 down to 0, emit 1 and subtract 2^i from num if
// 2^i <= num, else emit 0. Fails unless num is exactly 0 once all width
// bits have been consumed.
//
// It lives in package ir, not ir/solver, so both the Bits directive solver
// and Interpreter.solveOutOfRange can call it without ir importing
// ir/solver — importing that package from here would close the cycle
// ir/solver already has to open back into ir for Element/SolverKind/Solver.
func DecomposeBigEndian(v *big.Int, width int) ([]Element, error) {
	num := new(big.Int).Set(v)
	res := make([]Element, width)
	pow := new(big.Int)
	for i := width - 1; i >= 0; i-- {
		pow.Lsh(big.NewInt(1), uint(i))
		if num.Cmp(pow) >= 0 {
			res[width-1-i] = One()
			num.Sub(num, pow)
		} else {
			res[width-1-i] = Zero()
		}
	}
	if num.Sign() != 0 {
		return nil, fmt.Errorf("input does not fit in %d bits", width)
	}
	return res, nil
}

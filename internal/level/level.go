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

// Package level adapts gnark's internal/dag package to the IR's statement
// list: instead of clustering PLONK sparse-R1CS gates for a worker-pool
// solver, it clusters ir.Prog statements into dependency levels purely as
// a diagnostic/parallel-readiness report (see SPEC_FULL.md §4.7).
// Interpreter.Execute never consults this package — statement order
// remains the only execution order — but tooling built on top of the IR
// can call Build to ask "how parallelizable is this program".
package level

import (
	"golang.org/x/exp/slices"

	"github.com/arclight-zk/ir/ir"
)

// Graph records, for every statement index in a Prog, which earlier
// statement indices it depends on (its parents) and which later ones
// depend on it (its children).
type Graph struct {
	parents  [][]int
	children [][]int
	nbNodes  int
}

// Level is a set of statement indices whose dependencies are all
// satisfied by earlier levels.
type Level struct {
	Statements []int
}

// Build walks prog's statements in order and records, for each one, the
// most recent prior statement that wrote any variable it reads. ir.ONE and
// prog.Arguments are treated as already available before statement 0, so a
// statement that reads only those has no parent.
func Build(prog *ir.Prog) *Graph {
	g := &Graph{
		parents:  make([][]int, len(prog.Statements)),
		children: make([][]int, len(prog.Statements)),
		nbNodes:  len(prog.Statements),
	}

	bound := make(map[ir.Variable]bool, len(prog.Arguments)+1)
	bound[ir.ONE] = true
	for _, a := range prog.Arguments {
		bound[a] = true
	}
	lastWriter := make(map[ir.Variable]int, len(prog.Statements))

	for i, stmt := range prog.Statements {
		reads, writes := ir.StatementVariables(stmt, func(v ir.Variable) bool { return bound[v] })

		parentSet := make(map[int]struct{}, len(reads))
		for _, r := range reads {
			if w, ok := lastWriter[r]; ok {
				parentSet[w] = struct{}{}
			}
		}
		parents := make([]int, 0, len(parentSet))
		for p := range parentSet {
			parents = append(parents, p)
		}
		slices.Sort(parents)

		g.parents[i] = parents
		for _, p := range parents {
			g.children[p] = append(g.children[p], i)
		}

		for _, w := range writes {
			bound[w] = true
			lastWriter[w] = i
		}
	}

	return g
}

// Levels returns the statement indices grouped by dependency level: level 0
// holds statements with no parents, level k holds statements whose parents
// are all in levels < k. Within a level, statement order follows original
// index order.
func (g *Graph) Levels() []Level {
	levelOf := make([]int, g.nbNodes)
	maxLevel := 0
	for i := 0; i < g.nbNodes; i++ {
		l := 0
		for _, p := range g.parents[i] {
			if levelOf[p]+1 > l {
				l = levelOf[p] + 1
			}
		}
		levelOf[i] = l
		if l > maxLevel {
			maxLevel = l
		}
	}

	levels := make([]Level, maxLevel+1)
	for i := 0; i < g.nbNodes; i++ {
		l := levelOf[i]
		levels[l].Statements = append(levels[l].Statements, i)
	}
	return levels
}

// NbNodes returns the number of statements tracked by the graph.
func (g *Graph) NbNodes() int { return g.nbNodes }

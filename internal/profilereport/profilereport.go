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

// Package profilereport renders a level.Graph's levels as a pprof profile,
// one sample per level with the level's statement count as its value, so
// the scheduling report produced by internal/level can be opened in any
// pprof-compatible viewer (go tool pprof, Speedscope, ...) instead of a
// bespoke text dump.
package profilereport

import (
	"io"
	"strconv"
	"time"

	"github.com/google/pprof/profile"

	"github.com/arclight-zk/ir/internal/level"
)

// Write renders g's levels into pprof's profile.proto format and writes it
// to w.
func Write(w io.Writer, g *level.Graph) error {
	levels := g.Levels()

	valueType := &profile.ValueType{Type: "statements", Unit: "count"}
	p := &profile.Profile{
		SampleType: []*profile.ValueType{valueType},
		PeriodType: valueType,
		Period:     1,
		TimeNanos:  time.Unix(0, 0).UnixNano(),
	}

	levelFn := &profile.Function{ID: 1, Name: "level", SystemName: "level", Filename: "ir.Prog"}
	p.Function = []*profile.Function{levelFn}

	for i, lvl := range levels {
		loc := &profile.Location{
			ID: uint64(i + 1),
			Line: []profile.Line{
				{Function: levelFn, Line: int64(i)},
			},
		}
		p.Location = append(p.Location, loc)
		p.Sample = append(p.Sample, &profile.Sample{
			Location: []*profile.Location{loc},
			Value:    []int64{int64(len(lvl.Statements))},
			Label:    map[string][]string{"level": {strconv.Itoa(i)}},
		})
	}

	return p.Write(w)
}

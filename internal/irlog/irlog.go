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

// Package irlog adapts gnark's own logger package: a single process-wide
// zerolog.Logger, defaulting to a level that keeps interpreter internals
// quiet unless the caller asks for them, with Set to replace it (cmd/irrun
// uses it to raise the level for its -v flag).
package irlog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "ir").Logger().Level(zerolog.InfoLevel)
)

// Logger returns the package-wide logger used by the interpreter.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Set replaces the package-wide logger, e.g. to raise the level or
// redirect output in tests.
func Set(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Copyright 2025 Naren Yellavula
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

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cybrota/arborist/tree"
	"github.com/rs/zerolog"
)

const scopeFieldName = "scope"

var logger = zerolog.Nop()

// initLogger writes human readable logs to stderr and hands the same logger
// to the tree package.
func initLogger(debug bool) {
	initLoggerTo(os.Stderr, debug)
}

func initLoggerTo(out io.Writer, debug bool) {
	partsOrder := []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		scopeFieldName,
		zerolog.MessageFieldName,
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		PartsOrder: partsOrder,
		FormatPrepare: func(m map[string]any) error {
			formatScopeValue(m)
			return nil
		},
		FieldsExclude: []string{scopeFieldName},
	}

	logger = zerolog.New(consoleWriter)
	if debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
	logger = logger.With().Timestamp().Logger()

	tree.SetLogger(logger)
}

func formatScopeValue(vs map[string]any) {
	if scope, ok := vs[scopeFieldName].(string); ok {
		vs[scopeFieldName] = fmt.Sprintf("[%s]", scope)
	} else {
		vs[scopeFieldName] = ""
	}
}

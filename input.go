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
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

var (
	ErrNoValues       = errors.New("no values provided")
	ErrNegativeLength = errors.New("cable length must not be negative")
)

// splitValues tokenizes a value list such as `10, 20 "5"`. Commas and
// brackets are treated as whitespace.
func splitValues(line string) ([]string, error) {
	cleaned := strings.NewReplacer(",", " ", "[", " ", "]", " ").Replace(line)
	parts, err := shellwords.Parse(cleaned)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse values %q", line)
	}
	return parts, nil
}

// parseValues turns command arguments into integers. Each argument may hold
// several values.
func parseValues(args []string) ([]int, error) {
	var values []int
	for _, arg := range args {
		tokens, err := splitValues(arg)
		if err != nil {
			return nil, err
		}
		for _, token := range tokens {
			v, err := strconv.Atoi(token)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid value %q", token)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// parseLengths is parseValues for cable lengths, which cannot be negative.
func parseLengths(args []string) ([]int, error) {
	lengths, err := parseValues(args)
	if err != nil {
		return nil, err
	}
	for _, l := range lengths {
		if l < 0 {
			return nil, errors.Wrapf(ErrNegativeLength, "got %d", l)
		}
	}
	return lengths, nil
}

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
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDemo(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	config := defaultConfig()
	var out bytes.Buffer
	require.NoError(t, runDemo(&out, &config))

	text := out.String()
	for _, want := range []string{
		"TASK 1",
		"Input: [10 20 5 8 3 4 2]",
		"1) +10; min=10",
		"7) +2; min=2",
		"Root: 5 (h=3)",
		"Root: 50\n",
		"Range: 20-80",
		"AVL: 52",
		"BST: 348",
		"basic: [4 3 2 6] → 29",
		"mixed: [8 4 6 12] → 58",
		"equal: [5 5 5 5] → 40",
		"two: [1 2] → 3",
		"one: [10] → 0",
		"empty: [] → 0",
		"Done.",
	} {
		assert.Contains(t, text, want)
	}
}

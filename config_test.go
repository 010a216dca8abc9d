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

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigPath = "/home/tester/.arborist.yaml"

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	config, err := loadConfigFrom(fs, testConfigPath)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *config)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "log:\n  debug: true\ndemo:\n  avl_values: [1, 2, 3]\n"
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte(content), 0644))

	config, err := loadConfigFrom(fs, testConfigPath)
	require.NoError(t, err)
	assert.True(t, config.Log.Debug)
	assert.Equal(t, []int{1, 2, 3}, config.Demo.AVLValues)
	assert.Equal(t, 50, config.Demo.BSTRoot)
	assert.Equal(t, 100_000, config.Bench.Count)
}

func TestLoadConfigInvalidYAMLUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte("demo: [unclosed"), 0644))

	config, err := loadConfigFrom(fs, testConfigPath)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), *config)
}

func TestLoadConfigRejectsNonPositiveBenchCount(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testConfigPath, []byte("bench:\n  count: -4\n  seed: 9\n"), 0644))

	config, err := loadConfigFrom(fs, testConfigPath)
	require.NoError(t, err)
	assert.Equal(t, 100_000, config.Bench.Count)
	assert.Equal(t, int64(9), config.Bench.Seed)
}

func TestDisplaySettingsCreatesDefaultFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer

	require.NoError(t, displaySettings(&out, fs, testConfigPath))

	exists, err := afero.Exists(fs, testConfigPath)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Contains(t, out.String(), "Created default configuration")
	assert.Contains(t, out.String(), "avl_values: [10 20 5 8 3 4 2]")

	written, err := loadConfigFrom(fs, testConfigPath)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig().Demo.AVLValues, written.Demo.AVLValues)
	assert.Len(t, written.Demo.CableCases, 6)
	assert.Equal(t, defaultConfig().Bench, written.Bench)

	out.Reset()
	require.NoError(t, displaySettings(&out, fs, testConfigPath))
	assert.NotContains(t, out.String(), "Created default configuration")
}

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
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const configFileName = ".arborist.yaml"

// appFs is swapped for an in-memory filesystem in tests.
var appFs = afero.NewOsFs()

type LogConfig struct {
	Debug bool `yaml:"debug"`
}

type CableCase struct {
	Name    string `yaml:"name"`
	Lengths []int  `yaml:"lengths"`
}

type DemoConfig struct {
	AVLValues  []int       `yaml:"avl_values"`
	BSTRoot    int         `yaml:"bst_root"`
	BSTValues  []int       `yaml:"bst_values"`
	CableCases []CableCase `yaml:"cable_cases"`
}

type BenchConfig struct {
	Count       int   `yaml:"count"`
	Seed        int64 `yaml:"seed"`
	BloomSize   uint  `yaml:"bloom_size"`
	BloomHashes uint  `yaml:"bloom_hashes"`
}

type Config struct {
	Log   LogConfig   `yaml:"log"`
	Demo  DemoConfig  `yaml:"demo"`
	Bench BenchConfig `yaml:"bench"`
}

func defaultConfig() Config {
	return Config{
		Demo: DemoConfig{
			AVLValues: []int{10, 20, 5, 8, 3, 4, 2},
			BSTRoot:   50,
			BSTValues: []int{30, 20, 40, 70, 58, 80},
			CableCases: []CableCase{
				{Name: "basic", Lengths: []int{4, 3, 2, 6}},
				{Name: "mixed", Lengths: []int{8, 4, 6, 12}},
				{Name: "equal", Lengths: []int{5, 5, 5, 5}},
				{Name: "two", Lengths: []int{1, 2}},
				{Name: "one", Lengths: []int{10}},
				{Name: "empty", Lengths: []int{}},
			},
		},
		Bench: BenchConfig{
			Count:       100_000,
			Seed:        1,
			BloomSize:   1 << 20,
			BloomHashes: 5,
		},
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.arborist.yaml. Any problem with the file yields the
// defaults; keys missing from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := defaultConfig()
		return &config, nil
	}
	return loadConfigFrom(appFs, configPath)
}

func loadConfigFrom(fs afero.Fs, configPath string) (*Config, error) {
	config := defaultConfig()

	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		logger.Debug().Err(err).Str("path", configPath).Msg("using default configuration")
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		logger.Debug().Err(err).Str("path", configPath).Msg("invalid configuration, using defaults")
		config = defaultConfig()
		return &config, nil
	}

	if config.Bench.Count <= 0 {
		config.Bench.Count = defaultConfig().Bench.Count
	}
	if config.Bench.BloomSize == 0 || config.Bench.BloomHashes == 0 {
		config.Bench.BloomSize = defaultConfig().Bench.BloomSize
		config.Bench.BloomHashes = defaultConfig().Bench.BloomHashes
	}
	return &config, nil
}

func createDefaultConfigFile(fs afero.Fs, configPath string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := afero.WriteFile(fs, configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// displaySettings prints the effective settings, creating the config file
// with defaults first when it does not exist yet.
func displaySettings(w io.Writer, fs afero.Fs, configPath string) error {
	exists, err := afero.Exists(fs, configPath)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", configPath)
	}

	if !exists {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(fs, configPath); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(fs, configPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "🔧 Arborist Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")
	fmt.Fprintf(w, "📍 Config file: %s\n\n", configPath)

	fmt.Fprintf(w, "🪵 %sLogging:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • debug: %t\n\n", config.Log.Debug)

	fmt.Fprintf(w, "🌳 %sDemo:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • avl_values: %v\n", config.Demo.AVLValues)
	fmt.Fprintf(w, "  • bst_root: %d\n", config.Demo.BSTRoot)
	fmt.Fprintf(w, "  • bst_values: %v\n", config.Demo.BSTValues)
	fmt.Fprintf(w, "  • cable_cases: %d\n\n", len(config.Demo.CableCases))

	fmt.Fprintf(w, "⏱  %sBench:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • count: %d\n", config.Bench.Count)
	fmt.Fprintf(w, "  • seed: %d\n", config.Bench.Seed)
	fmt.Fprintf(w, "  • bloom_size: %d\n", config.Bench.BloomSize)
	fmt.Fprintf(w, "  • bloom_hashes: %d\n", config.Bench.BloomHashes)
	return nil
}

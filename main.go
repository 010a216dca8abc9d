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
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func main() {
	asciiLogo := `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗ ██╗███████╗████████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗██║██╔════╝╚══██╔══╝
███████║██████╔╝██████╔╝██║   ██║██████╔╝██║███████╗   ██║
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗██║╚════██║   ██║
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║██║███████║   ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝   ╚═╝
AVL trees, binary search trees and cable joining from your terminal [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	var (
		debug  bool
		config *Config
	)

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var rootCmd = &cobra.Command{
		Use:           "arborist",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Config loading never fails; problems are reported at debug level
			config, _ = LoadConfig()
			initLogger(debug || config.Log.Debug)
			InitializeColors()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the demo when no subcommand is provided
			return runDemo(cmd.OutOrStdout(), config)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Run the tree and cable joining demonstration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo builds an AVL tree and a BST from the configured values, sums their nodes and plans the configured cable joins`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), config)
		},
	}

	var cmdAVL = &cobra.Command{
		Use:   "avl VALUES...",
		Short: "Insert values into an AVL tree and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAVLCommand(cmd.OutOrStdout(), args)
		},
	}

	var cmdBST = &cobra.Command{
		Use:   "bst [--root N] VALUES...",
		Short: "Insert values into a binary search tree and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			var root *int
			if cmd.Flags().Changed("root") {
				r, err := cmd.Flags().GetInt("root")
				if err != nil {
					return err
				}
				root = &r
			}
			find, err := cmd.Flags().GetIntSlice("find")
			if err != nil {
				return err
			}
			return runBSTCommand(cmd.OutOrStdout(), args, root, find)
		},
	}
	cmdBST.Flags().Int("root", 0, "value of the root node, inserted first")
	cmdBST.Flags().IntSlice("find", nil, "values to look up after building the tree")

	var cmdCables = &cobra.Command{
		Use:   "cables LENGTHS...",
		Short: "Print the cheapest order to join cables into one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCablesCommand(cmd.OutOrStdout(), args, NewPlanCache())
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Insert and look up random keys in both trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			benchConfig := config.Bench
			if cmd.Flags().Changed("count") {
				benchConfig.Count, _ = cmd.Flags().GetInt("count")
			}
			if cmd.Flags().Changed("seed") {
				benchConfig.Seed, _ = cmd.Flags().GetInt64("seed")
			}

			reg := prometheus.NewRegistry()
			report, err := runBench(benchConfig, os.Stderr, newBenchMetrics(reg))
			if err != nil {
				return err
			}
			printBenchReport(cmd.OutOrStdout(), report)
			return printMetrics(cmd.OutOrStdout(), reg)
		},
	}
	cmdBench.Flags().Int("count", 0, "number of random keys to insert (default from settings)")
	cmdBench.Flags().Int64("seed", 0, "random seed (default from settings)")

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Launch the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens a terminal UI to grow trees and plan cable joins interactively`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBubbleTeaApp(NewPlanCache())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings displays the configuration file path and current settings`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := getConfigPath()
			if err != nil {
				return err
			}
			return displaySettings(cmd.OutOrStdout(), appFs, configPath)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Arborist usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the arborist CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Arborist version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(cmdDemo, cmdAVL, cmdBST, cmdCables, cmdBench, cmdExplore, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

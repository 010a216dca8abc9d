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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func usageMarkdown() string {
	return fmt.Sprintf(`

 **Arborist %s**

Self-balancing AVL trees, plain binary search trees and a greedy cable joining planner, all from your terminal.

Built with Go %s

# 1. Commands
* **demo**: build the demo AVL tree and BST, sum their nodes and plan the demo cable joins
* **avl** VALUES: insert values into an AVL tree and print its shape
* **bst** VALUES: insert values into a binary search tree, optionally seeded with --root
* **cables** LENGTHS: print the cheapest order to join cables into one
* **bench**: insert and look up random keys in both trees and print metrics
* **explore**: interactive terminal UI over all three structures
* **settings**: show the configuration file

# 2. Values
Values may be separated by spaces or commas, e.g. "10, 20, 5". Cable lengths must not be negative.

# 3. Configuration
Settings live in ~/.arborist.yaml and are created with defaults on first use.

# Please be aware
* Copy to clipboard in explore mode on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}

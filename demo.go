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

	"github.com/cybrota/arborist/cables"
	"github.com/cybrota/arborist/tree"
	"github.com/pterm/pterm"
)

func taskHeader(n int) string {
	return pterm.DefaultBox.Sprint(fmt.Sprintf(" TASK %d ", n))
}

// runDemo walks through the three tasks: building both trees, summing their
// nodes and joining cables.
func runDemo(w io.Writer, config *Config) error {
	fmt.Fprintln(w, "Algorithms and data structures demo")
	fmt.Fprintln(w)

	fmt.Fprintln(w, taskHeader(1))
	avl := demoAVLTree(w, config.Demo.AVLValues)
	fmt.Fprintln(w)
	bst := demoBST(w, config.Demo.BSTRoot, config.Demo.BSTValues)
	fmt.Fprintln(w)

	fmt.Fprintln(w, taskHeader(2))
	fmt.Fprintln(w, "Node sums")
	fmt.Fprintf(w, "AVL: %d\n", tree.CalculateTreeSum(avl.RootNode()))
	fmt.Fprintf(w, "BST: %d\n", tree.CalculateTreeSum(bst.RootNode()))
	fmt.Fprintln(w)

	fmt.Fprintln(w, taskHeader(3))
	if err := demoCables(w, config.Demo.CableCases); err != nil {
		return err
	}
	fmt.Fprintln(w, "\nDone.")
	return nil
}

func demoAVLTree(w io.Writer, values []int) *tree.AVLTree[int] {
	fmt.Fprintln(w, "AVL tree")
	avl := tree.NewAVLTree[int]()
	fmt.Fprintf(w, "Input: %v\n", values)
	for i, v := range values {
		avl.Insert(v)
		minValue, _ := tree.FindTreeMin(avl.RootNode())
		fmt.Fprintf(w, "%d) +%d; min=%d\n", i+1, v, minValue)
	}
	fmt.Fprintln(w, "Shape:")
	fmt.Fprint(w, renderTree(avl.RootNode(), emptyAVLText))
	fmt.Fprintf(w, "Node sum: %d\n", tree.CalculateTreeSum(avl.RootNode()))
	return avl
}

func demoBST(w io.Writer, root int, values []int) *tree.BinarySearchTree[int] {
	fmt.Fprintln(w, "BST (binary search tree)")
	bst := tree.NewBinarySearchTreeWithRoot(root)
	fmt.Fprintf(w, "Root=%d; adding: %v\n", root, values)
	for i, v := range values {
		bst.Insert(v)
		fmt.Fprintf(w, "%d) +%d ✓\n", i+1, v)
	}
	fmt.Fprintln(w, "Shape:")
	fmt.Fprint(w, renderTree(bst.RootNode(), emptyBSTText))

	minValue, _ := bst.FindMin()
	maxValue, _ := bst.FindMax()
	fmt.Fprintf(w, "Range: %d-%d\n", minValue, maxValue)
	fmt.Fprintf(w, "Node sum: %d\n", tree.CalculateTreeSum(bst.RootNode()))
	return bst
}

func demoCables(w io.Writer, cases []CableCase) error {
	fmt.Fprintln(w, "Connecting cables at minimum cost")

	items := make([]pterm.BulletListItem, 0, len(cases))
	for i, c := range cases {
		cost := cables.ConnectCablesMinCost(c.Lengths)
		items = append(items, pterm.BulletListItem{
			Level: 0,
			Text:  fmt.Sprintf("%d) %s: %v → %d", i+1, c.Name, c.Lengths, cost),
		})
	}

	list, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return err
	}
	fmt.Fprint(w, list)
	return nil
}

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

	"github.com/cybrota/arborist/tree"
	"github.com/patrickmn/go-cache"
)

func runAVLCommand(w io.Writer, args []string) error {
	values, err := parseValues(args)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return ErrNoValues
	}

	avl := tree.NewAVLTree[int]()
	for _, v := range values {
		avl.Insert(v)
	}
	logger.Debug().Int("keys", avl.Len()).Int("rotations", avl.Rotations()).Msg("avl tree built")

	fmt.Fprint(w, renderTree(avl.RootNode(), emptyAVLText))
	minValue, _ := tree.FindTreeMin(avl.RootNode())
	fmt.Fprintf(w, "Height: %d; rotations: %d\n", avl.Height(), avl.Rotations())
	fmt.Fprintf(w, "Min: %d\n", minValue)
	fmt.Fprintf(w, "Node sum: %d\n", tree.CalculateTreeSum(avl.RootNode()))
	return nil
}

// runBSTCommand builds a BST, seeded with root when it is non-nil, and
// reports membership of every value in find.
func runBSTCommand(w io.Writer, args []string, root *int, find []int) error {
	values, err := parseValues(args)
	if err != nil {
		return err
	}
	if len(values) == 0 && root == nil {
		return ErrNoValues
	}

	bst := tree.NewBinarySearchTree[int]()
	if root != nil {
		bst = tree.NewBinarySearchTreeWithRoot(*root)
	}
	for _, v := range values {
		bst.Insert(v)
	}

	fmt.Fprint(w, renderTree(bst.RootNode(), emptyBSTText))
	minValue, _ := bst.FindMin()
	maxValue, _ := bst.FindMax()
	fmt.Fprintf(w, "Height: %d\n", bst.Height())
	fmt.Fprintf(w, "Range: %d-%d\n", minValue, maxValue)
	fmt.Fprintf(w, "Node sum: %d\n", tree.CalculateTreeSum(bst.RootNode()))

	for _, v := range find {
		if bst.Search(v) {
			fmt.Fprintf(w, "%d: found\n", v)
		} else {
			fmt.Fprintf(w, "%d: not found\n", v)
		}
	}
	return nil
}

func runCablesCommand(w io.Writer, args []string, pc *cache.Cache) error {
	lengths, err := parseLengths(args)
	if err != nil {
		return err
	}
	fmt.Fprint(w, GetOrFillPlan(pc, lengths))
	return nil
}

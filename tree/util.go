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

package tree

import "cmp"

// FindTreeMin walks left from root and returns the leftmost value.
// It returns false when root is absent.
func FindTreeMin[T cmp.Ordered](root TreeNode[T]) (T, bool) {
	var zero T
	if isAbsent(root) {
		return zero, false
	}
	current := root
	for left := current.LeftChild(); left != nil; left = current.LeftChild() {
		current = left
	}
	return current.NodeValue(), true
}

// CalculateTreeSum adds up the values of every node reachable from root.
func CalculateTreeSum[T interface {
	cmp.Ordered
	Number
}](root TreeNode[T]) T {
	var total T
	if isAbsent(root) {
		return total
	}

	nodes := []TreeNode[T]{root}
	for len(nodes) > 0 {
		node := nodes[len(nodes)-1]
		nodes = nodes[:len(nodes)-1]

		total += node.NodeValue()
		if left := node.LeftChild(); left != nil {
			nodes = append(nodes, left)
		}
		if right := node.RightChild(); right != nil {
			nodes = append(nodes, right)
		}
	}
	return total
}

// subtreeHeight counts levels breadth-first so that degenerate chains do not
// recurse.
func subtreeHeight[T cmp.Ordered](root TreeNode[T]) int {
	if isAbsent(root) {
		return 0
	}
	height := 0
	level := []TreeNode[T]{root}
	for len(level) > 0 {
		height++
		var next []TreeNode[T]
		for _, node := range level {
			if left := node.LeftChild(); left != nil {
				next = append(next, left)
			}
			if right := node.RightChild(); right != nil {
				next = append(next, right)
			}
		}
		level = next
	}
	return height
}

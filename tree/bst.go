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

// BinarySearchTree is a plain, never rebalanced binary search tree.
// Sorted input degrades it into a chain.
type BinarySearchTree[T cmp.Ordered] struct {
	Root *BSTNode[T]
	size int
}

func NewBinarySearchTree[T cmp.Ordered]() *BinarySearchTree[T] {
	return &BinarySearchTree[T]{}
}

// NewBinarySearchTreeWithRoot returns a tree seeded with value as its root.
func NewBinarySearchTreeWithRoot[T cmp.Ordered](value T) *BinarySearchTree[T] {
	return &BinarySearchTree[T]{Root: &BSTNode[T]{Value: value}, size: 1}
}

// InsertBST inserts value below root and returns the root, which is only new
// when root was nil.
func InsertBST[T cmp.Ordered](root *BSTNode[T], value T) *BSTNode[T] {
	if root == nil {
		return &BSTNode[T]{Value: value}
	}
	tree := &BinarySearchTree[T]{Root: root}
	tree.Insert(value)
	return tree.Root
}

// Insert attaches value as a new leaf. Equal values are dropped.
func (t *BinarySearchTree[T]) Insert(value T) {
	if t.Root == nil {
		t.Root = &BSTNode[T]{Value: value}
		t.size++
		return
	}

	current := t.Root
	for {
		switch {
		case value < current.Value:
			if current.Left == nil {
				current.Left = &BSTNode[T]{Value: value}
				t.size++
				return
			}
			current = current.Left
		case value > current.Value:
			if current.Right == nil {
				current.Right = &BSTNode[T]{Value: value}
				t.size++
				return
			}
			current = current.Right
		default:
			logger.Debug().Interface("value", value).Msg("duplicate value ignored")
			return
		}
	}
}

func (t *BinarySearchTree[T]) Search(value T) bool {
	current := t.Root
	for current != nil {
		switch {
		case value < current.Value:
			current = current.Left
		case value > current.Value:
			current = current.Right
		default:
			return true
		}
	}
	return false
}

// FindMin returns the smallest value, or false on an empty tree.
func (t *BinarySearchTree[T]) FindMin() (T, bool) {
	var zero T
	if t.Root == nil {
		return zero, false
	}
	current := t.Root
	for current.Left != nil {
		current = current.Left
	}
	return current.Value, true
}

// FindMax returns the largest value, or false on an empty tree.
func (t *BinarySearchTree[T]) FindMax() (T, bool) {
	var zero T
	if t.Root == nil {
		return zero, false
	}
	current := t.Root
	for current.Right != nil {
		current = current.Right
	}
	return current.Value, true
}

func (t *BinarySearchTree[T]) Len() int {
	return t.size
}

// Height counts nodes on the longest root-to-leaf path; 0 when empty.
func (t *BinarySearchTree[T]) Height() int {
	return subtreeHeight(t.RootNode())
}

func (t *BinarySearchTree[T]) InOrder() []T {
	values := make([]T, 0, t.size)
	inOrderBST(t.Root, &values)
	return values
}

func inOrderBST[T cmp.Ordered](node *BSTNode[T], result *[]T) {
	if node == nil {
		return
	}
	inOrderBST(node.Left, result)
	*result = append(*result, node.Value)
	inOrderBST(node.Right, result)
}

func (t *BinarySearchTree[T]) RootNode() TreeNode[T] {
	if t.Root == nil {
		return nil
	}
	return t.Root
}

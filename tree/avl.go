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

// AVLTree is a height-balanced binary search tree. Keys are unique; inserting
// an existing key leaves the tree untouched.
type AVLTree[T cmp.Ordered] struct {
	Root *AVLNode[T]

	size      int
	rotations int
}

func NewAVLTree[T cmp.Ordered]() *AVLTree[T] {
	return &AVLTree[T]{Root: nil}
}

// InsertAVL inserts key into the tree rooted at root and returns the new root.
// A nil root yields a single node.
func InsertAVL[T cmp.Ordered](root *AVLNode[T], key T) *AVLNode[T] {
	if root == nil {
		return &AVLNode[T]{Key: key, Height: 1}
	}
	tree := &AVLTree[T]{Root: root}
	tree.Insert(key)
	return tree.Root
}

func (tree *AVLTree[T]) getHeight(node *AVLNode[T]) int {
	if node == nil {
		return 0
	}
	return node.Height
}

func (tree *AVLTree[T]) updateHeight(node *AVLNode[T]) {
	node.Height = max(tree.getHeight(node.Left), tree.getHeight(node.Right)) + 1
}

func (tree *AVLTree[T]) getBalanceFactor(node *AVLNode[T]) int {
	if node == nil {
		return 0
	}
	return tree.getHeight(node.Left) - tree.getHeight(node.Right)
}

func (tree *AVLTree[T]) rotateLeft(node *AVLNode[T]) *AVLNode[T] {
	if node == nil || node.Right == nil {
		logger.Warn().Msg("rotate left requested without a right child")
		return node
	}

	pivot := node.Right
	node.Right = pivot.Left
	pivot.Left = node

	// child first, it now sits below pivot
	tree.updateHeight(node)
	tree.updateHeight(pivot)

	tree.rotations++
	logger.Debug().Interface("from", node.Key).Interface("to", pivot.Key).Msg("rotate left")
	return pivot
}

func (tree *AVLTree[T]) rotateRight(node *AVLNode[T]) *AVLNode[T] {
	if node == nil || node.Left == nil {
		logger.Warn().Msg("rotate right requested without a left child")
		return node
	}

	pivot := node.Left
	node.Left = pivot.Right
	pivot.Right = node

	tree.updateHeight(node)
	tree.updateHeight(pivot)

	tree.rotations++
	logger.Debug().Interface("from", node.Key).Interface("to", pivot.Key).Msg("rotate right")
	return pivot
}

// Insert adds key and rebalances every node on the insertion path.
func (tree *AVLTree[T]) Insert(key T) {
	tree.Root = tree.insertRecursive(tree.Root, key)
}

func (tree *AVLTree[T]) insertRecursive(node *AVLNode[T], key T) *AVLNode[T] {
	if node == nil {
		tree.size++
		return &AVLNode[T]{Key: key, Height: 1}
	}

	if key < node.Key {
		node.Left = tree.insertRecursive(node.Left, key)
	} else if key > node.Key {
		node.Right = tree.insertRecursive(node.Right, key)
	} else {
		// Subtree is unchanged, so heights above stay correct.
		return node
	}

	tree.updateHeight(node)
	return tree.rebalance(node)
}

func (tree *AVLTree[T]) rebalance(node *AVLNode[T]) *AVLNode[T] {
	balanceFactor := tree.getBalanceFactor(node)

	// Right-heavy
	if balanceFactor < -1 {
		if tree.getBalanceFactor(node.Right) > 0 {
			node.Right = tree.rotateRight(node.Right)
		}
		return tree.rotateLeft(node)
	}

	// Left-heavy
	if balanceFactor > 1 {
		if tree.getBalanceFactor(node.Left) < 0 {
			node.Left = tree.rotateLeft(node.Left)
		}
		return tree.rotateRight(node)
	}

	return node
}

// Search reports whether key is stored in the tree.
func (tree *AVLTree[T]) Search(key T) bool {
	node := tree.Root
	for node != nil {
		switch {
		case key < node.Key:
			node = node.Left
		case key > node.Key:
			node = node.Right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of keys inserted through this tree value.
func (tree *AVLTree[T]) Len() int {
	return tree.size
}

func (tree *AVLTree[T]) Height() int {
	return tree.getHeight(tree.Root)
}

// Rotations returns how many single rotations insertions have performed.
// A double rotation counts as two.
func (tree *AVLTree[T]) Rotations() int {
	return tree.rotations
}

func (tree *AVLTree[T]) InOrder() []T {
	keys := make([]T, 0, tree.size)
	inOrderAVL(tree.Root, &keys)
	return keys
}

func inOrderAVL[T cmp.Ordered](node *AVLNode[T], result *[]T) {
	if node == nil {
		return
	}
	inOrderAVL(node.Left, result)
	*result = append(*result, node.Key)
	inOrderAVL(node.Right, result)
}

// RootNode returns the root as a TreeNode, nil when the tree is empty.
func (tree *AVLTree[T]) RootNode() TreeNode[T] {
	if tree.Root == nil {
		return nil
	}
	return tree.Root
}

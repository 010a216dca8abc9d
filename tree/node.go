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

// Number is the set of key types that can be summed.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// TreeNode is the read-only view shared by both node shapes. Absent children
// are returned as a nil interface, never as a typed nil pointer.
type TreeNode[T cmp.Ordered] interface {
	NodeValue() T
	LeftChild() TreeNode[T]
	RightChild() TreeNode[T]
}

// HeightNode is implemented by nodes that cache their subtree height.
type HeightNode interface {
	NodeHeight() int
}

// BSTNode is a node of the unbalanced BinarySearchTree.
type BSTNode[T cmp.Ordered] struct {
	Value T
	Left  *BSTNode[T]
	Right *BSTNode[T]
}

func (n *BSTNode[T]) NodeValue() T {
	return n.Value
}

func (n *BSTNode[T]) LeftChild() TreeNode[T] {
	if n.Left == nil {
		return nil
	}
	return n.Left
}

func (n *BSTNode[T]) RightChild() TreeNode[T] {
	if n.Right == nil {
		return nil
	}
	return n.Right
}

// AVLNode is a node of the AVLTree. Height is 1 for a leaf.
type AVLNode[T cmp.Ordered] struct {
	Key    T
	Height int
	Left   *AVLNode[T]
	Right  *AVLNode[T]
}

func (n *AVLNode[T]) NodeValue() T {
	return n.Key
}

func (n *AVLNode[T]) LeftChild() TreeNode[T] {
	if n.Left == nil {
		return nil
	}
	return n.Left
}

func (n *AVLNode[T]) RightChild() TreeNode[T] {
	if n.Right == nil {
		return nil
	}
	return n.Right
}

func (n *AVLNode[T]) NodeHeight() int {
	return n.Height
}

// isAbsent reports whether n holds no node, including a typed nil pointer
// stored in the interface.
func isAbsent[T cmp.Ordered](n TreeNode[T]) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *BSTNode[T]:
		return v == nil
	case *AVLNode[T]:
		return v == nil
	}
	return false
}

var (
	_ TreeNode[int] = (*BSTNode[int])(nil)
	_ TreeNode[int] = (*AVLNode[int])(nil)
	_ HeightNode    = (*AVLNode[int])(nil)
)

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

import (
	"cmp"

	"github.com/pkg/errors"
)

var (
	ErrOutOfOrder = errors.New("binary search ordering violated")
	ErrBadHeight  = errors.New("cached height does not match children")
	ErrUnbalanced = errors.New("balance factor out of range")
)

type boundedNode[T cmp.Ordered] struct {
	node         TreeNode[T]
	lower, upper *T
}

// CheckOrdering verifies that every left subtree holds strictly smaller values
// and every right subtree strictly larger ones.
func CheckOrdering[T cmp.Ordered](root TreeNode[T]) error {
	if isAbsent(root) {
		return nil
	}

	stack := []boundedNode[T]{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		value := top.node.NodeValue()
		if top.lower != nil && value <= *top.lower {
			return errors.Wrapf(ErrOutOfOrder, "value %v not above %v", value, *top.lower)
		}
		if top.upper != nil && value >= *top.upper {
			return errors.Wrapf(ErrOutOfOrder, "value %v not below %v", value, *top.upper)
		}

		if left := top.node.LeftChild(); left != nil {
			stack = append(stack, boundedNode[T]{node: left, lower: top.lower, upper: &value})
		}
		if right := top.node.RightChild(); right != nil {
			stack = append(stack, boundedNode[T]{node: right, lower: &value, upper: top.upper})
		}
	}
	return nil
}

// CheckAVL verifies ordering, cached heights and balance factors of the tree
// rooted at root and returns the first violation found.
func CheckAVL[T cmp.Ordered](root *AVLNode[T]) error {
	if root == nil {
		return nil
	}
	if err := CheckOrdering[T](root); err != nil {
		return err
	}
	_, err := checkAVLNode(root)
	return err
}

// checkAVLNode returns the measured height of node.
func checkAVLNode[T cmp.Ordered](node *AVLNode[T]) (int, error) {
	if node == nil {
		return 0, nil
	}
	left, err := checkAVLNode(node.Left)
	if err != nil {
		return 0, err
	}
	right, err := checkAVLNode(node.Right)
	if err != nil {
		return 0, err
	}

	height := max(left, right) + 1
	if node.Height != height {
		return 0, errors.Wrapf(ErrBadHeight, "key %v has height %d, want %d", node.Key, node.Height, height)
	}
	if balance := left - right; balance < -1 || balance > 1 {
		return 0, errors.Wrapf(ErrUnbalanced, "key %v has balance %d", node.Key, balance)
	}
	return height, nil
}

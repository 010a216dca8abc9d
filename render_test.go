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
	"testing"

	"github.com/cybrota/arborist/tree"
	"github.com/stretchr/testify/assert"
)

func TestRenderAVLTree(t *testing.T) {
	avl := tree.NewAVLTree[int]()
	for _, v := range []int{10, 20, 5, 8, 3, 4, 2} {
		avl.Insert(v)
	}

	expected := "Root: 5 (h=3)\n" +
		"  L-- 3 (h=2)\n" +
		"    L-- 2 (h=1)\n" +
		"    R-- 4 (h=1)\n" +
		"  R-- 10 (h=2)\n" +
		"    L-- 8 (h=1)\n" +
		"    R-- 20 (h=1)\n"
	assert.Equal(t, expected, renderTree(avl.RootNode(), emptyAVLText))
}

func TestRenderBST(t *testing.T) {
	bst := tree.NewBinarySearchTreeWithRoot(50)
	for _, v := range []int{30, 70, 58} {
		bst.Insert(v)
	}

	expected := "Root: 50\n" +
		"  L-- 30\n" +
		"  R-- 70\n" +
		"    L-- 58\n"
	assert.Equal(t, expected, renderTree(bst.RootNode(), emptyBSTText))
}

func TestRenderEmptyTrees(t *testing.T) {
	assert.Equal(t, "Empty tree\n", renderTree(tree.NewAVLTree[int]().RootNode(), emptyAVLText))
	assert.Equal(t, "Empty BST\n", renderTree(tree.NewBinarySearchTree[int]().RootNode(), emptyBSTText))
}

func TestRenderMergePlan(t *testing.T) {
	expected := "1) 2 + 3 = 5\n" +
		"2) 4 + 5 = 9\n" +
		"3) 6 + 9 = 15\n" +
		"Total cost: 29\n"
	assert.Equal(t, expected, renderMergePlan([]int{4, 3, 2, 6}))

	assert.Equal(t, "[10]: nothing to join\nTotal cost: 0\n", renderMergePlan([]int{10}))
}

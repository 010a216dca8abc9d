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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type AVLTestCase struct {
	Name           string
	KeysToInsert   []int
	ExpectedOrder  []int
	ExpectedRoot   int
	ExpectedHeight int
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:           "Single Key",
			KeysToInsert:   []int{42},
			ExpectedOrder:  []int{42},
			ExpectedRoot:   42,
			ExpectedHeight: 1,
		},
		{
			Name:           "Right-Right Rotation",
			KeysToInsert:   []int{1, 2, 3},
			ExpectedOrder:  []int{1, 2, 3},
			ExpectedRoot:   2,
			ExpectedHeight: 2,
		},
		{
			Name:           "Left-Left Rotation",
			KeysToInsert:   []int{3, 2, 1},
			ExpectedOrder:  []int{1, 2, 3},
			ExpectedRoot:   2,
			ExpectedHeight: 2,
		},
		{
			Name:           "Left-Right Rotation",
			KeysToInsert:   []int{30, 10, 20},
			ExpectedOrder:  []int{10, 20, 30},
			ExpectedRoot:   20,
			ExpectedHeight: 2,
		},
		{
			Name:           "Right-Left Rotation",
			KeysToInsert:   []int{10, 30, 20},
			ExpectedOrder:  []int{10, 20, 30},
			ExpectedRoot:   20,
			ExpectedHeight: 2,
		},
		{
			Name:           "Demo Sequence",
			KeysToInsert:   []int{10, 20, 5, 8, 3, 4, 2},
			ExpectedOrder:  []int{2, 3, 4, 5, 8, 10, 20},
			ExpectedRoot:   5,
			ExpectedHeight: 3,
		},
		{
			Name:           "Duplicates Ignored",
			KeysToInsert:   []int{5, 5, 3, 3, 8, 8},
			ExpectedOrder:  []int{3, 5, 8},
			ExpectedRoot:   5,
			ExpectedHeight: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := NewAVLTree[int]()
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
				require.NoError(t, CheckAVL(tree.Root), "after inserting %d", key)
			}

			assert.Equal(t, tc.ExpectedOrder, tree.InOrder())
			require.NotNil(t, tree.Root)
			assert.Equal(t, tc.ExpectedRoot, tree.Root.Key)
			assert.Equal(t, tc.ExpectedHeight, tree.Height())
			assert.Equal(t, len(tc.ExpectedOrder), tree.Len())
		})
	}
}

func TestAVLDemoSequenceShape(t *testing.T) {
	tree := NewAVLTree[int]()
	for _, key := range []int{10, 20, 5, 8, 3, 4, 2} {
		tree.Insert(key)
	}

	root := tree.Root
	require.NotNil(t, root)
	// inserting 4 makes 10 left-left heavy and lifts 5 to the root
	assert.Equal(t, 5, root.Key)
	assert.Equal(t, 3, root.Height)
	assert.Equal(t, 3, root.Left.Key)
	assert.Equal(t, 2, root.Left.Left.Key)
	assert.Equal(t, 4, root.Left.Right.Key)
	assert.Equal(t, 10, root.Right.Key)
	assert.Equal(t, 8, root.Right.Left.Key)
	assert.Equal(t, 20, root.Right.Right.Key)
	assert.Equal(t, 1, tree.Rotations())
}

func TestAVLInvariantsRandomInsertions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree := NewAVLTree[int]()
	distinct := map[int]struct{}{}

	for i := 0; i < 2000; i++ {
		key := rng.Intn(500)
		tree.Insert(key)
		distinct[key] = struct{}{}
		require.NoError(t, CheckAVL(tree.Root), "after inserting %d", key)
	}

	assert.Equal(t, len(distinct), tree.Len())
	keys := tree.InOrder()
	assert.Len(t, keys, len(distinct))
	assert.IsIncreasing(t, keys)

	// 1.44 log2(n) bound, generous for n <= 500
	assert.LessOrEqual(t, tree.Height(), 13)
}

func TestAVLSortedInputStaysShallow(t *testing.T) {
	tree := NewAVLTree[int]()
	for i := 1; i <= 1023; i++ {
		tree.Insert(i)
	}
	require.NoError(t, CheckAVL(tree.Root))
	assert.Equal(t, 10, tree.Height())
	assert.Positive(t, tree.Rotations())
}

func TestAVLDuplicateInsertKeepsShape(t *testing.T) {
	tree := NewAVLTree[int]()
	for _, key := range []int{50, 25, 75, 10, 30, 60, 90, 5} {
		tree.Insert(key)
	}
	before := snapshotAVL(tree.Root)
	rotations := tree.Rotations()

	for _, key := range []int{50, 5, 90, 30} {
		tree.Insert(key)
	}

	assert.Equal(t, before, snapshotAVL(tree.Root))
	assert.Equal(t, rotations, tree.Rotations())
	assert.Equal(t, 8, tree.Len())
}

func TestAVLSearch(t *testing.T) {
	tree := NewAVLTree[string]()
	assert.False(t, tree.Search("apple"))

	for _, key := range []string{"cherry", "apple", "banana", "date"} {
		tree.Insert(key)
	}
	assert.True(t, tree.Search("banana"))
	assert.True(t, tree.Search("date"))
	assert.False(t, tree.Search("elderberry"))
}

func TestInsertAVL(t *testing.T) {
	var root *AVLNode[int]
	root = InsertAVL(root, 1)
	require.NotNil(t, root)
	assert.Equal(t, 1, root.Height)

	root = InsertAVL(root, 2)
	root = InsertAVL(root, 3)
	assert.Equal(t, 2, root.Key)
	assert.NoError(t, CheckAVL(root))
}

func TestRotationWithoutChildIsNoop(t *testing.T) {
	tree := NewAVLTree[int]()
	leaf := &AVLNode[int]{Key: 1, Height: 1}

	assert.Same(t, leaf, tree.rotateLeft(leaf))
	assert.Same(t, leaf, tree.rotateRight(leaf))
	assert.Nil(t, tree.rotateLeft(nil))
	assert.Equal(t, 0, tree.Rotations())
}

func TestRotateLeftUpdatesHeights(t *testing.T) {
	tree := NewAVLTree[int]()
	node := &AVLNode[int]{Key: 1, Height: 3, Right: &AVLNode[int]{
		Key: 2, Height: 2, Right: &AVLNode[int]{Key: 3, Height: 1},
	}}

	root := tree.rotateLeft(node)
	assert.Equal(t, 2, root.Key)
	assert.Equal(t, 2, root.Height)
	assert.Equal(t, 1, root.Left.Height)
	assert.Nil(t, root.Left.Right)
	assert.NoError(t, CheckAVL(root))
}

type shapeEntry struct {
	Key    int
	Height int
	Depth  int
}

func snapshotAVL(node *AVLNode[int]) []shapeEntry {
	var out []shapeEntry
	var walk func(n *AVLNode[int], depth int)
	walk = func(n *AVLNode[int], depth int) {
		if n == nil {
			return
		}
		walk(n.Left, depth+1)
		out = append(out, shapeEntry{Key: n.Key, Height: n.Height, Depth: depth})
		walk(n.Right, depth+1)
	}
	walk(node, 0)
	return out
}

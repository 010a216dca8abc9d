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
	"cmp"
	"fmt"
	"strings"

	"github.com/cybrota/arborist/cables"
	"github.com/cybrota/arborist/tree"
)

const (
	emptyAVLText = "Empty tree"
	emptyBSTText = "Empty BST"
)

// renderTree draws one node per line, children indented two spaces below
// their parent and tagged L-- or R--. Nodes that cache a height get (h=N).
func renderTree[T cmp.Ordered](root tree.TreeNode[T], emptyText string) string {
	if root == nil {
		return emptyText + "\n"
	}
	var b strings.Builder
	writeNode(&b, root, 0, "Root: ")
	return b.String()
}

func writeNode[T cmp.Ordered](b *strings.Builder, node tree.TreeNode[T], level int, prefix string) {
	b.WriteString(strings.Repeat("  ", level))
	b.WriteString(prefix)
	fmt.Fprint(b, node.NodeValue())
	if h, ok := node.(tree.HeightNode); ok {
		fmt.Fprintf(b, " (h=%d)", h.NodeHeight())
	}
	b.WriteByte('\n')

	if left := node.LeftChild(); left != nil {
		writeNode(b, left, level+1, "L-- ")
	}
	if right := node.RightChild(); right != nil {
		writeNode(b, right, level+1, "R-- ")
	}
}

// renderMergePlan lists every join followed by the total.
func renderMergePlan(lengths []int) string {
	merges, total := cables.PlanMerges(lengths)

	var b strings.Builder
	if len(merges) == 0 {
		fmt.Fprintf(&b, "%v: nothing to join\n", lengths)
	}
	for i, m := range merges {
		fmt.Fprintf(&b, "%d) %d + %d = %d\n", i+1, m.First, m.Second, m.Cost)
	}
	fmt.Fprintf(&b, "Total cost: %d\n", total)
	return b.String()
}

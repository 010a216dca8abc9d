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

/*
Package cables computes the cheapest way to join cables into one.

Joining two cables costs the sum of their lengths and yields a cable of that
length. Always joining the two shortest cables available gives the minimum
total cost:

	Time  O(n log n)
	Space O(n)
*/
package cables

import "container/heap"

// Length is any numeric cable length.
type Length interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Merge is one join step: First and Second are consumed, Cost is both the
// price paid and the length of the resulting cable.
type Merge[T Length] struct {
	First  T
	Second T
	Cost   T
}

// lengthHeap is a min-heap of cable lengths.
type lengthHeap[T Length] []T

func (h lengthHeap[T]) Len() int           { return len(h) }
func (h lengthHeap[T]) Less(i, j int) bool { return h[i] < h[j] }
func (h lengthHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *lengthHeap[T]) Push(x any)        { *h = append(*h, x.(T)) }
func (h *lengthHeap[T]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// ConnectCablesMinCost returns the minimum total cost of joining all lengths
// into one cable. Fewer than two lengths cost nothing.
func ConnectCablesMinCost[T Length](lengths []T) T {
	_, total := PlanMerges(lengths)
	return total
}

// PlanMerges returns the join steps in the order the greedy strategy performs
// them, along with their total cost. lengths is not modified.
func PlanMerges[T Length](lengths []T) ([]Merge[T], T) {
	var total T
	if len(lengths) < 2 {
		return nil, total
	}

	h := make(lengthHeap[T], len(lengths))
	copy(h, lengths)
	heap.Init(&h)

	merges := make([]Merge[T], 0, len(lengths)-1)
	for h.Len() > 1 {
		first := heap.Pop(&h).(T)
		second := heap.Pop(&h).(T)
		cost := first + second

		total += cost
		merges = append(merges, Merge[T]{First: first, Second: second, Cost: cost})
		heap.Push(&h, cost)
	}
	return merges, total
}

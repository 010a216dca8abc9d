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
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCachePlanAndGetPlan(t *testing.T) {
	c := NewPlanCache()
	lengths := []int{4, 3, 2, 6}

	// Initially, GetPlan should return an empty string for unseen lengths.
	if got := GetPlan(c, lengths); got != "" {
		t.Errorf("GetPlan(%v) = %q; want empty string", lengths, got)
	}

	plan := GetOrFillPlan(c, lengths)
	if plan != renderMergePlan(lengths) {
		t.Errorf("GetOrFillPlan(%v) = %q; want %q", lengths, plan, renderMergePlan(lengths))
	}

	if got := GetPlan(c, lengths); got != plan {
		t.Errorf("GetPlan(%v) = %q; want %q", lengths, got, plan)
	}

	// Order matters for the key, the plan does not depend on it but the cache does.
	if got := GetPlan(c, []int{2, 3, 4, 6}); got != "" {
		t.Errorf("GetPlan on a different ordering = %q; want empty string", got)
	}
}

func TestPlanCacheExpiration(t *testing.T) {
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	lengths := []int{1, 2}

	c.Set(planCacheKey(lengths), "cached", 100*time.Millisecond)
	if got := GetPlan(c, lengths); got != "cached" {
		t.Errorf("GetPlan(%v) = %q; want %q", lengths, got, "cached")
	}

	time.Sleep(150 * time.Millisecond)

	if got := GetPlan(c, lengths); got != "" {
		t.Errorf("After expiration, GetPlan(%v) = %q; want empty string", lengths, got)
	}
}

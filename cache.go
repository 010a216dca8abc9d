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
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Merge plans are cheap to rebuild, keep them only for a session
	planCacheExpiration = 30 * time.Minute
	planCacheCleanup    = 5 * time.Minute
)

// NewPlanCache creates a cache for rendered cable merge plans
func NewPlanCache() *cache.Cache {
	return cache.New(planCacheExpiration, planCacheCleanup)
}

func planCacheKey(lengths []int) string {
	return fmt.Sprint(lengths)
}

func CachePlan(c *cache.Cache, lengths []int, plan string) {
	c.Set(planCacheKey(lengths), plan, planCacheExpiration)
}

func GetPlan(c *cache.Cache, lengths []int) string {
	val, ok := c.Get(planCacheKey(lengths))
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrFillPlan returns the cached plan for lengths, rendering and caching it
// on a miss.
func GetOrFillPlan(c *cache.Cache, lengths []int) string {
	if plan := GetPlan(c, lengths); plan != "" {
		return plan
	}
	plan := renderMergePlan(lengths)
	CachePlan(c, lengths, plan)
	return plan
}

// Mangamatch Core
// Copyright (c) 2026 The Mangamatch Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Mangamatch Core.
//
// Mangamatch Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mangamatch Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mangamatch Core.  If not, see <http://www.gnu.org/licenses/>.

// Package memoize provides fixed-capacity LRU caches for memoizing pure
// computations. Each cache enforces its capacity on every insert, evicting
// the least-recently-used entry first; this bound is the similarity engine's
// only defense against unbounded memory growth during long review sessions.
package memoize

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a bounded LRU cache with hit/miss accounting. Get refreshes the
// entry's recency; Set at capacity evicts the single least-recently-used
// entry before inserting. Safe for concurrent use.
type Cache[K comparable, V any] struct {
	lru    *lru.Cache[K, V]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats is a point-in-time snapshot of a cache's accounting counters.
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// New creates a cache holding at most capacity entries. Panics if capacity
// is not positive, matching the regexp.MustCompile convention: capacities
// are fixed constants, so a bad one is a programming error.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	c, err := lru.New[K, V](capacity)
	if err != nil {
		panic(fmt.Sprintf("memoize: invalid cache capacity %d: %v", capacity, err))
	}
	return &Cache[K, V]{lru: c}
}

// Get returns the cached value for key, marking the entry most recently
// used on a hit.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.lru.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Set inserts or replaces the value for key, evicting the least-recently-used
// entry if the cache is at capacity.
func (c *Cache[K, V]) Set(key K, value V) {
	c.lru.Add(key, value)
}

// GetOrCompute returns the cached value for key, computing and caching it on
// a miss.
func (c *Cache[K, V]) GetOrCompute(key K, compute func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := compute()
	c.Set(key, v)
	return v
}

// Len returns the current number of cached entries.
func (c *Cache[K, V]) Len() int {
	return c.lru.Len()
}

// Purge drops every entry and resets the accounting counters.
func (c *Cache[K, V]) Purge() {
	c.lru.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns a snapshot of the cache's counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.lru.Len(),
	}
}

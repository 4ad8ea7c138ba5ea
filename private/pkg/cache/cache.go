// Copyright 2024-2026 Lomheny, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cache provides a keyed cache with explicit invalidation.
package cache

import (
	"sync"
)

// Cache is a cache from K to V.
//
// A zero Cache is ready to use. Population and invalidation are explicit:
// values never expire on their own, the owner decides when a key is stale.
type Cache[K comparable, V any] struct {
	store map[K]V
	lock  sync.RWMutex
}

// TryGet returns the cached value for the key, if present.
func (c *Cache[K, V]) TryGet(key K) (V, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()
	value, ok := c.store[key]
	return value, ok
}

// Store caches the value for the key, replacing any previous value.
func (c *Cache[K, V]) Store(key K, value V) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.store == nil {
		c.store = make(map[K]V)
	}
	c.store[key] = value
}

// GetOrAdd gets the value for the key, or calls getUncached to compute it,
// caching the result. Errors are not cached.
func (c *Cache[K, V]) GetOrAdd(key K, getUncached func() (V, error)) (V, error) {
	if value, ok := c.TryGet(key); ok {
		return value, nil
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.store == nil {
		c.store = make(map[K]V)
	}
	if value, ok := c.store[key]; ok {
		return value, nil
	}
	value, err := getUncached()
	if err != nil {
		return value, err
	}
	c.store[key] = value
	return value, nil
}

// Invalidate drops the cached value for the key, if any.
func (c *Cache[K, V]) Invalidate(key K) {
	c.lock.Lock()
	defer c.lock.Unlock()
	delete(c.store, key)
}

// InvalidateAll drops every cached value.
func (c *Cache[K, V]) InvalidateAll() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.store = nil
}

// Len returns the number of cached keys.
func (c *Cache[K, V]) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return len(c.store)
}

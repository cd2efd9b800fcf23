/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"context"
	"time"
)

// ContextCache is a context-aware facade over a MemoryCache with identical
// semantics. Each operation observes context cancellation at the call
// boundary and otherwise delegates directly; it adds no synchronization of
// its own.
type ContextCache struct {
	cache *MemoryCache
}

// NewContextCache wraps the given cache in a context-aware facade.
func NewContextCache(c *MemoryCache) *ContextCache {
	return &ContextCache{cache: c}
}

// Set stores a value under the key.
func (c *ContextCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.cache.Set(key, value, ttl)
	return nil
}

// Get returns the value stored under the key.
func (c *ContextCache) Get(ctx context.Context, key string) (interface{}, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	value, ok := c.cache.Get(key)
	return value, ok, nil
}

// Delete removes the key and reports whether it was present.
func (c *ContextCache) Delete(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return c.cache.Delete(key), nil
}

// Exists reports whether the key holds a live entry.
func (c *ContextCache) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return c.cache.Exists(key), nil
}

// TTL returns the seconds remaining before the key expires.
func (c *ContextCache) TTL(ctx context.Context, key string) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	return c.cache.TTL(key), nil
}

// Expire sets a new expiry on an existing key.
func (c *ContextCache) Expire(ctx context.Context, key string, seconds int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return c.cache.Expire(key, seconds), nil
}

// Keys returns the live keys matching the pattern.
func (c *ContextCache) Keys(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.cache.Keys(pattern), nil
}

// Flush removes every entry.
func (c *ContextCache) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.cache.Flush()
	return nil
}

// Stats returns a snapshot of cache usage.
func (c *ContextCache) Stats(ctx context.Context) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	return c.cache.Stats(), nil
}

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

// Package cache provides an in-memory key/value store with TTL expiration
// and memory-budgeted eviction, safe for concurrent use.
package cache

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/domocarroll/subfracture-v3/internal/system/log"
)

// MemoryCache is a thread-safe in-memory store. Entries expire lazily on
// access and are purged by a background sweep that also evicts entries by
// ascending (access count, creation time) when usage exceeds the budget.
type MemoryCache struct {
	mu              sync.Mutex
	entries         map[string]*entry
	maxSizeBytes    int64
	maxSizeMB       int
	cleanupInterval time.Duration
	lastCleanup     time.Time

	done      chan struct{}
	closeOnce sync.Once
	logger    *log.Logger
}

// New creates a memory cache with the given budget in MB and sweep interval
// in seconds. Non-positive arguments fall back to the defaults. The sweep
// goroutine is owned by the cache from construction; Close must be called
// to release it.
func New(maxSizeMB int, cleanupIntervalSeconds int) *MemoryCache {
	if maxSizeMB <= 0 {
		maxSizeMB = DefaultMaxSizeMB
	}
	if cleanupIntervalSeconds <= 0 {
		cleanupIntervalSeconds = DefaultCleanupIntervalSeconds
	}

	c := &MemoryCache{
		entries:         make(map[string]*entry),
		maxSizeBytes:    int64(maxSizeMB) * 1024 * 1024,
		maxSizeMB:       maxSizeMB,
		cleanupInterval: time.Duration(cleanupIntervalSeconds) * time.Second,
		lastCleanup:     time.Now(),
		done:            make(chan struct{}),
		logger:          log.GetLogger().With(log.String(log.LoggerKeyComponentName, "MemoryCache")),
	}
	go c.sweep()

	c.logger.Debug("Initialized memory cache",
		log.Int("maxSizeMB", maxSizeMB), log.Int("cleanupInterval", cleanupIntervalSeconds))
	return c
}

// Set stores a value under the key, replacing any existing entry. A
// positive ttl sets an absolute expiry; otherwise the entry never expires.
func (c *MemoryCache) Set(key string, value interface{}, ttl time.Duration) {
	now := time.Now()
	e := &entry{
		value:     value,
		createdAt: now,
		size:      estimateSize(key, value),
	}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = e
	c.maybeCleanup(now)
	c.mu.Unlock()
}

// Get returns the value stored under the key. An expired entry is removed
// and reported as a miss. A hit increments the entry's access count, which
// improves its retention priority during eviction.
func (c *MemoryCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired(time.Now()) {
		delete(c.entries, key)
		return nil, false
	}
	e.accessCount++
	return e.value, true
}

// Delete removes the key and reports whether it was present.
func (c *MemoryCache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	return true
}

// Exists reports whether the key holds a live entry. It delegates to Get,
// so it shares the access-count side effect of a hit.
func (c *MemoryCache) Exists(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// TTL returns the whole seconds remaining before the key expires, floored
// at 0. It returns -1 when the key is absent or has no expiry.
func (c *MemoryCache) TTL(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.expiresAt.IsZero() {
		return -1
	}
	remaining := int(time.Until(e.expiresAt).Seconds())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expire sets a new expiry of now plus the given seconds on an existing
// key. It returns false when the key is absent.
func (c *MemoryCache) Expire(key string, seconds int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	e.expiresAt = time.Now().Add(time.Duration(seconds) * time.Second)
	return true
}

// Keys returns the live keys matching the pattern. "*" matches every key,
// a trailing "*" matches by literal prefix, and anything else is an exact
// match. Expired entries are filtered out regardless of sweep cadence.
func (c *MemoryCache) Keys(pattern string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	keys := make([]string, 0)
	for key, e := range c.entries {
		if e.expired(now) {
			continue
		}
		if matchesPattern(key, pattern) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Flush removes every entry unconditionally.
func (c *MemoryCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// Stats returns a snapshot of cache usage.
func (c *MemoryCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	var memoryBytes int64
	expiredCount := 0
	for _, e := range c.entries {
		memoryBytes += int64(e.size)
		if e.expired(now) {
			expiredCount++
		}
	}

	return Stats{
		EntryCount:      len(c.entries),
		ExpiredCount:    expiredCount,
		MemoryBytes:     memoryBytes,
		MemoryMB:        float64(memoryBytes) / (1024 * 1024),
		LimitMB:         c.maxSizeMB,
		UtilizationPct:  float64(memoryBytes) / float64(c.maxSizeBytes) * 100,
		CleanupInterval: int(c.cleanupInterval.Seconds()),
	}
}

// Close stops the background sweep. It is safe to call more than once.
// Cache contents are discarded with the process.
func (c *MemoryCache) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// sweep runs the periodic cleanup until Close is called.
func (c *MemoryCache) sweep() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.cleanup(time.Now())
			c.mu.Unlock()
		case <-c.done:
			return
		}
	}
}

// maybeCleanup runs the cleanup inline when a full interval has elapsed
// since the last pass. This keeps hygiene on the write path even if the
// sweep goroutine is starved. Caller must hold the lock.
func (c *MemoryCache) maybeCleanup(now time.Time) {
	if now.Sub(c.lastCleanup) >= c.cleanupInterval {
		c.cleanup(now)
	}
}

// cleanup removes expired entries and evicts over-budget ones. Caller must
// hold the lock.
func (c *MemoryCache) cleanup(now time.Time) {
	c.lastCleanup = now

	removed := 0
	var memoryBytes int64
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
			removed++
			continue
		}
		memoryBytes += int64(e.size)
	}

	evicted := 0
	if memoryBytes > c.maxSizeBytes {
		evicted = c.evict(memoryBytes)
	}

	if removed > 0 || evicted > 0 {
		c.logger.Debug("Cache cleanup completed",
			log.Int("expiredRemoved", removed), log.Int("evicted", evicted))
	}
}

// evict removes entries in ascending (access count, creation time) order
// until usage falls to the hysteresis target. Caller must hold the lock.
func (c *MemoryCache) evict(memoryBytes int64) int {
	target := int64(float64(c.maxSizeBytes) * evictionTargetRatio)

	type candidate struct {
		key string
		e   *entry
	}
	candidates := make([]candidate, 0, len(c.entries))
	for key, e := range c.entries {
		candidates = append(candidates, candidate{key: key, e: e})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].e.accessCount != candidates[j].e.accessCount {
			return candidates[i].e.accessCount < candidates[j].e.accessCount
		}
		return candidates[i].e.createdAt.Before(candidates[j].e.createdAt)
	})

	evicted := 0
	for _, cand := range candidates {
		if memoryBytes <= target {
			break
		}
		delete(c.entries, cand.key)
		memoryBytes -= int64(cand.e.size)
		evicted++
	}
	return evicted
}

// matchesPattern applies the key pattern rules: "*" matches everything, a
// trailing "*" matches by prefix, anything else is an exact match.
func matchesPattern(key, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(key, pattern[:len(pattern)-1])
	}
	return key == pattern
}

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
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type MemoryCacheTestSuite struct {
	suite.Suite
	cache *MemoryCache
}

func TestMemoryCacheSuite(t *testing.T) {
	suite.Run(t, new(MemoryCacheTestSuite))
}

func (s *MemoryCacheTestSuite) SetupTest() {
	s.cache = New(1, 300)
}

func (s *MemoryCacheTestSuite) TearDownTest() {
	s.cache.Close()
}

func (s *MemoryCacheTestSuite) TestSetAndGet() {
	s.cache.Set("key1", "value1", 0)

	value, ok := s.cache.Get("key1")
	s.True(ok)
	s.Equal("value1", value)
}

func (s *MemoryCacheTestSuite) TestGetMissing() {
	value, ok := s.cache.Get("missing")
	s.False(ok)
	s.Nil(value)
}

func (s *MemoryCacheTestSuite) TestSetOverwrites() {
	s.cache.Set("key1", "old", 0)
	s.cache.Set("key1", "new", 0)

	value, ok := s.cache.Get("key1")
	s.True(ok)
	s.Equal("new", value)
}

func (s *MemoryCacheTestSuite) TestExpiry() {
	s.cache.Set("short", "value", 50*time.Millisecond)

	value, ok := s.cache.Get("short")
	s.True(ok)
	s.Equal("value", value)

	time.Sleep(80 * time.Millisecond)

	_, ok = s.cache.Get("short")
	s.False(ok)
}

func (s *MemoryCacheTestSuite) TestDeleteIdempotent() {
	s.cache.Set("key1", "value1", 0)

	s.True(s.cache.Delete("key1"))
	s.False(s.cache.Delete("key1"))
}

func (s *MemoryCacheTestSuite) TestExists() {
	s.cache.Set("key1", "value1", 0)

	s.True(s.cache.Exists("key1"))
	s.False(s.cache.Exists("missing"))
}

func (s *MemoryCacheTestSuite) TestExistsBumpsAccessCount() {
	s.cache.Set("key1", "value1", 0)
	s.cache.Exists("key1")
	s.cache.Exists("key1")

	s.cache.mu.Lock()
	count := s.cache.entries["key1"].accessCount
	s.cache.mu.Unlock()
	s.Equal(int64(2), count)
}

func (s *MemoryCacheTestSuite) TestTTL() {
	testCases := []struct {
		name     string
		setup    func()
		key      string
		validate func(ttl int)
	}{
		{
			name:     "MissingKey",
			setup:    func() {},
			key:      "missing",
			validate: func(ttl int) { s.Equal(-1, ttl) },
		},
		{
			name:     "NoExpiry",
			setup:    func() { s.cache.Set("forever", "v", 0) },
			key:      "forever",
			validate: func(ttl int) { s.Equal(-1, ttl) },
		},
		{
			name:  "WithExpiry",
			setup: func() { s.cache.Set("timed", "v", 30*time.Second) },
			key:   "timed",
			validate: func(ttl int) {
				s.GreaterOrEqual(ttl, 29)
				s.LessOrEqual(ttl, 30)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setup()
			tc.validate(s.cache.TTL(tc.key))
		})
	}
}

func (s *MemoryCacheTestSuite) TestExpire() {
	s.cache.Set("key1", "value1", 0)

	s.True(s.cache.Expire("key1", 10))
	ttl := s.cache.TTL("key1")
	s.GreaterOrEqual(ttl, 9)
	s.LessOrEqual(ttl, 10)

	s.False(s.cache.Expire("missing", 10))
}

func (s *MemoryCacheTestSuite) TestKeys() {
	s.cache.Set("foo:1", "a", 0)
	s.cache.Set("foo:2", "b", 0)
	s.cache.Set("bar:1", "c", 0)

	s.ElementsMatch([]string{"foo:1", "foo:2", "bar:1"}, s.cache.Keys("*"))
	s.ElementsMatch([]string{"foo:1", "foo:2"}, s.cache.Keys("foo:*"))
	s.ElementsMatch([]string{"bar:1"}, s.cache.Keys("bar:1"))
	s.Empty(s.cache.Keys("baz:*"))
}

func (s *MemoryCacheTestSuite) TestKeysFiltersExpired() {
	s.cache.Set("live", "a", 0)
	s.cache.Set("dead", "b", 30*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	s.ElementsMatch([]string{"live"}, s.cache.Keys("*"))
}

func (s *MemoryCacheTestSuite) TestFlush() {
	s.cache.Set("key1", "a", 0)
	s.cache.Set("key2", "b", 0)

	s.cache.Flush()

	_, ok := s.cache.Get("key1")
	s.False(ok)
	_, ok = s.cache.Get("key2")
	s.False(ok)
	s.Equal(0, s.cache.Stats().EntryCount)
}

func (s *MemoryCacheTestSuite) TestStats() {
	s.cache.Set("key1", "value1", 0)
	s.cache.Set("key2", "value2", 30*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	stats := s.cache.Stats()
	s.Equal(2, stats.EntryCount)
	s.Equal(1, stats.ExpiredCount)
	s.Equal(1, stats.LimitMB)
	s.Equal(300, stats.CleanupInterval)
	s.Greater(stats.MemoryBytes, int64(0))
	s.Greater(stats.UtilizationPct, 0.0)
}

func (s *MemoryCacheTestSuite) TestEvictionUnderBudgetPressure() {
	payload := strings.Repeat("x", 300*1024)
	for _, key := range []string{"a", "b", "c", "d", "e"} {
		s.cache.Set(key, payload, 0)
		time.Sleep(time.Millisecond)
	}

	// Raise the retention priority of the two newest entries.
	for i := 0; i < 3; i++ {
		s.cache.Get("d")
		s.cache.Get("e")
	}

	s.cache.mu.Lock()
	s.cache.cleanup(time.Now())
	s.cache.mu.Unlock()

	s.False(s.cache.Exists("a"))
	s.False(s.cache.Exists("b"))
	s.False(s.cache.Exists("c"))
	s.True(s.cache.Exists("d"))
	s.True(s.cache.Exists("e"))

	stats := s.cache.Stats()
	s.LessOrEqual(float64(stats.MemoryBytes), float64(s.cache.maxSizeBytes)*evictionTargetRatio)
}

func (s *MemoryCacheTestSuite) TestAccessedEntrySurvivesEviction() {
	payload := strings.Repeat("x", 400*1024)
	s.cache.Set("unread", payload, 0)
	time.Sleep(time.Millisecond)
	s.cache.Set("read", payload, 0)
	s.cache.Get("read")

	s.cache.Set("filler", payload, 0)

	s.cache.mu.Lock()
	s.cache.cleanup(time.Now())
	s.cache.mu.Unlock()

	s.False(s.cache.Exists("unread"))
	s.True(s.cache.Exists("read"))
}

func (s *MemoryCacheTestSuite) TestInlineCleanupOnSet() {
	s.cache.Set("dead", "v", 30*time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	s.cache.mu.Lock()
	s.cache.lastCleanup = time.Now().Add(-s.cache.cleanupInterval)
	s.cache.mu.Unlock()

	s.cache.Set("trigger", "v", 0)

	s.cache.mu.Lock()
	_, ok := s.cache.entries["dead"]
	s.cache.mu.Unlock()
	s.False(ok)
}

func (s *MemoryCacheTestSuite) TestCloseIsIdempotent() {
	c := New(1, 1)
	c.Close()
	c.Close()
}

func (s *MemoryCacheTestSuite) TestScenario() {
	s.cache.Set("a", "1", 100*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	_, ok := s.cache.Get("a")
	s.False(ok)

	s.cache.Set("b", "2", 0)
	s.Equal(-1, s.cache.TTL("b"))

	s.True(s.cache.Expire("b", 10))
	ttl := s.cache.TTL("b")
	s.GreaterOrEqual(ttl, 9)
	s.LessOrEqual(ttl, 10)
}

func TestConcurrentAccess(t *testing.T) {
	c := New(8, 300)
	defer c.Close()

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("worker:%d", n)
			c.Set(key, n, 0)
		}(i)
	}
	wg.Wait()

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("worker:%d", n)
			value, ok := c.Get(key)
			if !ok {
				t.Errorf("missing key %s", key)
				return
			}
			if value != n {
				t.Errorf("key %s: expected %d, got %v", key, n, value)
			}
		}(i)
	}
	wg.Wait()
}

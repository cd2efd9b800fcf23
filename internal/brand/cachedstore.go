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

package brand

import (
	"time"

	"github.com/domocarroll/subfracture-v3/internal/system/cache"
	"github.com/domocarroll/subfracture-v3/internal/system/log"
)

const (
	brandCacheKeyPrefix = "brand:"
	brandCacheTTL       = 5 * time.Minute
)

// cacheBackedBrandStore wraps a brand store with read-through caching on the
// get path. Writes go straight to the store and invalidate the cached copy.
type cacheBackedBrandStore struct {
	store brandStoreInterface
	cache *cache.MemoryCache
}

// newCacheBackedBrandStore wraps the given store with the cache. A nil cache
// disables caching and delegates every call.
func newCacheBackedBrandStore(store brandStoreInterface, memoryCache *cache.MemoryCache) brandStoreInterface {
	return &cacheBackedBrandStore{
		store: store,
		cache: memoryCache,
	}
}

// GetBrand returns the cached brand when present, otherwise reads through
// to the store and populates the cache.
func (c *cacheBackedBrandStore) GetBrand(id string) (Brand, error) {
	if c.cache == nil {
		return c.store.GetBrand(id)
	}

	key := brandCacheKeyPrefix + id
	if value, ok := c.cache.Get(key); ok {
		if b, ok := value.(Brand); ok {
			return copyBrand(b), nil
		}
	}

	b, err := c.store.GetBrand(id)
	if err != nil {
		return Brand{}, err
	}

	c.cache.Set(key, copyBrand(b), brandCacheTTL)
	log.GetLogger().Debug("Cached brand after store read", log.String(log.LoggerKeyBrandID, id))
	return b, nil
}

// copyBrand clones the brand's mutable fields. The cached copy must never
// share backing storage with a value handed to callers: the service mutates
// dimensions in place when evolving them.
func copyBrand(b Brand) Brand {
	clone := b
	if b.Dimensions != nil {
		clone.Dimensions = make([]Dimension, len(b.Dimensions))
		copy(clone.Dimensions, b.Dimensions)
		for i, d := range b.Dimensions {
			if d.Connections != nil {
				clone.Dimensions[i].Connections = append([]string(nil), d.Connections...)
			}
		}
	}
	if b.CognitiveState != nil {
		clone.CognitiveState = make(map[string]float64, len(b.CognitiveState))
		for k, v := range b.CognitiveState {
			clone.CognitiveState[k] = v
		}
	}
	return clone
}

// CreateBrand delegates to the store.
func (c *cacheBackedBrandStore) CreateBrand(b Brand, initialSnapshot Snapshot) error {
	return c.store.CreateBrand(b, initialSnapshot)
}

// GetBrandListCount delegates to the store.
func (c *cacheBackedBrandStore) GetBrandListCount() (int, error) {
	return c.store.GetBrandListCount()
}

// GetBrandList delegates to the store.
func (c *cacheBackedBrandStore) GetBrandList(limit, offset int) ([]Brand, error) {
	return c.store.GetBrandList(limit, offset)
}

// CheckBrandNameConflict delegates to the store.
func (c *cacheBackedBrandStore) CheckBrandNameConflict(name string) (bool, error) {
	return c.store.CheckBrandNameConflict(name)
}

// UpdateBrand writes through to the store and drops the cached copy.
func (c *cacheBackedBrandStore) UpdateBrand(b Brand) error {
	if err := c.store.UpdateBrand(b); err != nil {
		return err
	}
	c.invalidate(b.ID)
	return nil
}

// DeleteBrand deletes via the store and drops the cached copy.
func (c *cacheBackedBrandStore) DeleteBrand(id string) error {
	if err := c.store.DeleteBrand(id); err != nil {
		return err
	}
	c.invalidate(id)
	return nil
}

// CreateSnapshot delegates to the store.
func (c *cacheBackedBrandStore) CreateSnapshot(s Snapshot) error {
	return c.store.CreateSnapshot(s)
}

func (c *cacheBackedBrandStore) invalidate(id string) {
	if c.cache != nil {
		c.cache.Delete(brandCacheKeyPrefix + id)
	}
}

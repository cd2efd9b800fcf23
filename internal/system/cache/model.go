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

import "time"

// entry is a single stored record. Entries are owned exclusively by the
// cache; callers only ever see values. A zero expiresAt means no expiry.
type entry struct {
	value       interface{}
	expiresAt   time.Time
	accessCount int64
	createdAt   time.Time
	size        int
}

// expired reports whether the entry is logically expired at the given time.
func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Stats holds a point-in-time snapshot of cache usage.
type Stats struct {
	EntryCount      int     `json:"entry_count"`
	ExpiredCount    int     `json:"expired_count"`
	MemoryBytes     int64   `json:"memory_bytes"`
	MemoryMB        float64 `json:"memory_mb"`
	LimitMB         int     `json:"limit_mb"`
	UtilizationPct  float64 `json:"utilization_pct"`
	CleanupInterval int     `json:"cleanup_interval"`
}

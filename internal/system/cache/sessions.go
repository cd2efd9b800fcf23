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

// Session helpers are a convenience layer over the same store. Session
// entries live in the shared key space and are subject to the same expiry
// and eviction rules as any other entry.

// SetSession stores session data under the session key space. A
// non-positive ttl falls back to the default session TTL.
func (c *MemoryCache) SetSession(sessionID string, data interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	c.Set(SessionKeyPrefix+sessionID, data, ttl)
}

// GetSession returns the data stored for the session, if any.
func (c *MemoryCache) GetSession(sessionID string) (interface{}, bool) {
	return c.Get(SessionKeyPrefix + sessionID)
}

// DeleteSession removes the session entry and reports whether it existed.
func (c *MemoryCache) DeleteSession(sessionID string) bool {
	return c.Delete(SessionKeyPrefix + sessionID)
}

// ExtendSession pushes the session expiry out by the given seconds from
// now. It returns false when the session is absent.
func (c *MemoryCache) ExtendSession(sessionID string, seconds int) bool {
	return c.Expire(SessionKeyPrefix+sessionID, seconds)
}

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

const (
	// DefaultMaxSizeMB is the default memory budget when none is configured.
	DefaultMaxSizeMB = 128
	// DefaultCleanupIntervalSeconds is the default sweep period.
	DefaultCleanupIntervalSeconds = 300
	// DefaultSessionTTL is the default time-to-live for session entries.
	DefaultSessionTTL = time.Hour

	// SessionKeyPrefix namespaces session entries within the shared key space.
	SessionKeyPrefix = "session:"

	// evictionTargetRatio is the fraction of the budget usage is brought
	// down to when the budget is exceeded.
	evictionTargetRatio = 0.8

	// entryOverheadBytes is the fixed per-entry bookkeeping overhead added
	// to every size estimate.
	entryOverheadBytes = 64
)

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

package insight

import "time"

const (
	// coherenceThreshold separates strong dimensions from weak ones.
	coherenceThreshold = 0.7
	// signalVarianceThreshold flags an unbalanced signal distribution.
	signalVarianceThreshold = 0.3
	// lowSignalThreshold marks a dimension with a weak market signal.
	lowSignalThreshold = 0.4
	// lowCoherenceThreshold marks a dimension that lacks internal alignment.
	lowCoherenceThreshold = 0.6
	// strongFoundationCoherence and strongFoundationSignal together mark a
	// dimension that can anchor the rest of the brand.
	strongFoundationCoherence = 0.8
	strongFoundationSignal    = 0.7
	// misalignmentThreshold flags a gap between coherence and signal strength.
	misalignmentThreshold = 0.3
)

const (
	dimensionStatusStrong = "strong"
	dimensionStatusWeak   = "weak"
)

const (
	insightTypeLowSignal        = "low_signal"
	insightTypeLowCoherence     = "low_coherence"
	insightTypeStrongFoundation = "strong_foundation"
	insightTypeMisalignment     = "misalignment"
)

const (
	insightCacheKeyPrefix = "insight:"
	insightCacheTTL       = 2 * time.Minute
)

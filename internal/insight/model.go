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

// DimensionAnalysis holds the per-dimension breakdown of a coherence analysis.
type DimensionAnalysis struct {
	Name           string  `json:"name"`
	Coherence      float64 `json:"coherence"`
	SignalStrength float64 `json:"signal_strength"`
	BalanceScore   float64 `json:"balance_score"`
	Status         string  `json:"status"`
}

// Recommendation is an improvement suggestion derived from an analysis.
type Recommendation struct {
	Type             string   `json:"type"`
	Priority         string   `json:"priority"`
	Description      string   `json:"description"`
	SuggestedActions []string `json:"suggested_actions"`
}

// CoherenceAnalysis is the result of analyzing a brand's dimensional coherence.
type CoherenceAnalysis struct {
	BrandID            string              `json:"brand_id"`
	OverallCoherence   float64             `json:"overall_coherence"`
	CoherenceVariance  float64             `json:"coherence_variance"`
	SignalVariance     float64             `json:"signal_variance"`
	DimensionCount     int                 `json:"dimension_count"`
	StrongDimensions   int                 `json:"strong_dimensions"`
	WeakDimensions     int                 `json:"weak_dimensions"`
	StrongestDimension string              `json:"strongest_dimension"`
	WeakestDimension   string              `json:"weakest_dimension"`
	Dimensions         []DimensionAnalysis `json:"dimension_analysis"`
	Recommendations    []Recommendation    `json:"recommendations"`
	GeneratedAt        time.Time           `json:"generated_at"`
}

// Insight is a single templated finding about a brand dimension.
type Insight struct {
	Type           string  `json:"type"`
	Dimension      string  `json:"dimension"`
	Finding        string  `json:"finding"`
	Recommendation string  `json:"recommendation"`
	Confidence     float64 `json:"confidence"`
}

// InsightResponse is the response for an insight generation request.
type InsightResponse struct {
	BrandID     string    `json:"brand_id"`
	Insights    []Insight `json:"insights"`
	FocusAreas  []string  `json:"focus_areas,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

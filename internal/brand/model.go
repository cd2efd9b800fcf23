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

import "time"

// Dimension is a single facet of a brand under development.
type Dimension struct {
	Name           string   `json:"name"`
	SignalStrength float64  `json:"signal_strength"`
	Coherence      float64  `json:"coherence"`
	Connections    []string `json:"connections"`
}

// Brand represents a brand record with its dimensional state.
type Brand struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description,omitempty"`
	Dimensions     []Dimension        `json:"dimensions"`
	CognitiveState map[string]float64 `json:"cognitive_state"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// BrandRequest is the request payload for creating a brand.
type BrandRequest struct {
	Name              string      `json:"name"`
	Description       string      `json:"description,omitempty"`
	InitialDimensions []Dimension `json:"initial_dimensions,omitempty"`
}

// BrandListResponse is the paginated list response for brands.
type BrandListResponse struct {
	TotalResults int     `json:"totalResults"`
	StartIndex   int     `json:"startIndex"`
	Count        int     `json:"count"`
	Brands       []Brand `json:"brands"`
}

// Signal is a contributed observation feeding a dimension evolution.
type Signal struct {
	Source     string  `json:"source,omitempty"`
	Content    string  `json:"content,omitempty"`
	Confidence float64 `json:"confidence"`
}

// EvolveDimensionRequest is the request payload for evolving a dimension.
type EvolveDimensionRequest struct {
	DimensionName   string   `json:"dimension_name"`
	SignalStrength  *float64 `json:"signal_strength,omitempty"`
	Coherence       *float64 `json:"coherence,omitempty"`
	Signals         []Signal `json:"signals,omitempty"`
	EvolutionReason string   `json:"evolution_reason,omitempty"`
}

// EvolutionMetrics summarizes the effect of a dimension evolution.
type EvolutionMetrics struct {
	SignalStrengthChange float64 `json:"signal_strength_change"`
	CoherenceChange      float64 `json:"coherence_change"`
	SignalsProcessed     int     `json:"signals_processed"`
	EvolutionReason      string  `json:"evolution_reason,omitempty"`
}

// EvolveDimensionResponse is the response payload for a dimension evolution.
type EvolveDimensionResponse struct {
	Brand   Brand            `json:"brand"`
	Metrics EvolutionMetrics `json:"evolution_metrics"`
}

// Snapshot is a point-in-time capture of a brand's state.
type Snapshot struct {
	ID        string    `json:"id"`
	BrandID   string    `json:"brand_id"`
	Name      string    `json:"name"`
	Context   string    `json:"context,omitempty"`
	State     Brand     `json:"state"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SnapshotRequest is the request payload for creating a snapshot.
type SnapshotRequest struct {
	Name      string `json:"name"`
	Context   string `json:"context,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
}

// defaultDimensions returns the dimension set seeded into every new brand
// that does not supply its own.
func defaultDimensions() []Dimension {
	return []Dimension{
		{Name: "market_position", SignalStrength: 0.5, Coherence: 0.7, Connections: []string{}},
		{Name: "value_proposition", SignalStrength: 0.6, Coherence: 0.8, Connections: []string{}},
		{Name: "emotional_landscape", SignalStrength: 0.4, Coherence: 0.6, Connections: []string{}},
		{Name: "brand_narrative", SignalStrength: 0.7, Coherence: 0.9, Connections: []string{}},
		{Name: "target_audience", SignalStrength: 0.3, Coherence: 0.5, Connections: []string{}},
		{Name: "competitive_differentiation", SignalStrength: 0.5, Coherence: 0.6, Connections: []string{}},
	}
}

// defaultCognitiveState returns the cognitive state seeded into new brands.
func defaultCognitiveState() map[string]float64 {
	return map[string]float64{
		"analytical": 0.5,
		"intuitive":  0.5,
		"efficiency": 0.7,
	}
}

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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domocarroll/subfracture-v3/internal/brand"
)

func testBrand() brand.Brand {
	return brand.Brand{
		ID:   "brand-1",
		Name: "Test Brand",
		Dimensions: []brand.Dimension{
			{Name: "market_position", SignalStrength: 0.5, Coherence: 0.7},
			{Name: "value_proposition", SignalStrength: 0.6, Coherence: 0.8},
			{Name: "emotional_landscape", SignalStrength: 0.4, Coherence: 0.6},
			{Name: "brand_narrative", SignalStrength: 0.7, Coherence: 0.9},
			{Name: "target_audience", SignalStrength: 0.3, Coherence: 0.5},
			{Name: "competitive_differentiation", SignalStrength: 0.5, Coherence: 0.6},
		},
	}
}

func TestAnalyzeCoherenceMetrics(t *testing.T) {
	analysis := analyzeCoherence(testBrand(), nil)

	assert.Equal(t, "brand-1", analysis.BrandID)
	assert.Equal(t, 6, analysis.DimensionCount)
	assert.Equal(t, 0.683, analysis.OverallCoherence)
	assert.Equal(t, 0.022, analysis.CoherenceVariance)
	assert.Equal(t, 0.02, analysis.SignalVariance)
	assert.Equal(t, 3, analysis.StrongDimensions)
	assert.Equal(t, 3, analysis.WeakDimensions)
	assert.Equal(t, "brand_narrative", analysis.StrongestDimension)
	assert.Equal(t, "target_audience", analysis.WeakestDimension)
}

func TestAnalyzeCoherenceDimensionBreakdown(t *testing.T) {
	analysis := analyzeCoherence(testBrand(), nil)

	assert.Len(t, analysis.Dimensions, 6)

	byName := map[string]DimensionAnalysis{}
	for _, d := range analysis.Dimensions {
		byName[d.Name] = d
	}

	assert.Equal(t, dimensionStatusStrong, byName["brand_narrative"].Status)
	assert.Equal(t, 0.8, byName["brand_narrative"].BalanceScore)
	assert.Equal(t, dimensionStatusWeak, byName["target_audience"].Status)
	assert.Equal(t, 0.8, byName["target_audience"].BalanceScore)
}

func TestAnalyzeCoherenceRecommendations(t *testing.T) {
	analysis := analyzeCoherence(testBrand(), nil)

	types := []string{}
	for _, r := range analysis.Recommendations {
		types = append(types, r.Type)
	}

	// Overall coherence 0.683 is below the 0.7 threshold and three weak
	// dimensions exist; signal variance 0.02 stays under its threshold.
	assert.Equal(t, []string{"coherence_improvement", "dimension_strengthening"}, types)

	for _, r := range analysis.Recommendations {
		if r.Type == "dimension_strengthening" {
			assert.Len(t, r.SuggestedActions, 3)
		}
	}
}

func TestAnalyzeCoherenceWithFocusAreas(t *testing.T) {
	analysis := analyzeCoherence(testBrand(), []string{"brand_narrative", "value_proposition"})

	assert.Equal(t, 2, analysis.DimensionCount)
	assert.Equal(t, 0.85, analysis.OverallCoherence)
	assert.Equal(t, 2, analysis.StrongDimensions)
	assert.Equal(t, 0, analysis.WeakDimensions)
	assert.Equal(t, "brand_narrative", analysis.StrongestDimension)
	assert.Equal(t, "value_proposition", analysis.WeakestDimension)
}

func TestAnalyzeCoherenceNoDimensions(t *testing.T) {
	analysis := analyzeCoherence(brand.Brand{ID: "brand-1"}, nil)

	assert.Equal(t, 0, analysis.DimensionCount)
	assert.Zero(t, analysis.OverallCoherence)
	assert.Empty(t, analysis.Dimensions)
	assert.Empty(t, analysis.Recommendations)
}

func TestGenerateInsightsDefaultDimensions(t *testing.T) {
	insights := generateInsights(testBrand(), nil)

	byType := map[string][]Insight{}
	for _, i := range insights {
		byType[i.Type] = append(byType[i.Type], i)
	}

	assert.Len(t, insights, 4)

	assert.Len(t, byType[insightTypeStrongFoundation], 1)
	assert.Equal(t, "brand_narrative", byType[insightTypeStrongFoundation][0].Dimension)
	assert.Equal(t, 0.8, byType[insightTypeStrongFoundation][0].Confidence)

	assert.Len(t, byType[insightTypeLowSignal], 1)
	assert.Equal(t, "target_audience", byType[insightTypeLowSignal][0].Dimension)
	assert.Equal(t, 0.6, byType[insightTypeLowSignal][0].Confidence)

	assert.Len(t, byType[insightTypeLowCoherence], 1)
	assert.Equal(t, "target_audience", byType[insightTypeLowCoherence][0].Dimension)
}

func TestGenerateInsightsMisalignment(t *testing.T) {
	b := brand.Brand{
		ID: "brand-1",
		Dimensions: []brand.Dimension{
			{Name: "visual_identity", SignalStrength: 0.4, Coherence: 0.9},
		},
	}

	insights := generateInsights(b, nil)

	assert.Len(t, insights, 1)
	assert.Equal(t, insightTypeMisalignment, insights[0].Type)
	assert.Equal(t, 0.7, insights[0].Confidence)
}

func TestGenerateInsightsFocusAreaFilter(t *testing.T) {
	insights := generateInsights(testBrand(), []string{"market_position"})
	assert.Empty(t, insights)

	insights = generateInsights(testBrand(), []string{"brand_narrative"})
	assert.Len(t, insights, 1)
	assert.Equal(t, insightTypeStrongFoundation, insights[0].Type)
}

func TestVarianceSingleValue(t *testing.T) {
	assert.Zero(t, variance([]float64{0.5}))
	assert.Zero(t, variance(nil))
}

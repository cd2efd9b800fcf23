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

// Package insight derives coherence analyses and templated findings from a
// brand's dimensional state.
package insight

import (
	"fmt"
	"math"
	"time"

	"github.com/domocarroll/subfracture-v3/internal/brand"
)

// analyzeCoherence computes coherence metrics for a brand, optionally
// restricted to the named focus areas. Variance is the sample variance.
func analyzeCoherence(b brand.Brand, focusAreas []string) CoherenceAnalysis {
	dimensions := filterDimensions(b.Dimensions, focusAreas)

	analysis := CoherenceAnalysis{
		BrandID:        b.ID,
		DimensionCount: len(dimensions),
		GeneratedAt:    time.Now().UTC(),
	}
	if len(dimensions) == 0 {
		analysis.Dimensions = []DimensionAnalysis{}
		analysis.Recommendations = []Recommendation{}
		return analysis
	}

	coherences := make([]float64, 0, len(dimensions))
	strengths := make([]float64, 0, len(dimensions))
	strongest, weakest := dimensions[0], dimensions[0]

	for _, d := range dimensions {
		coherences = append(coherences, d.Coherence)
		strengths = append(strengths, d.SignalStrength)

		status := dimensionStatusWeak
		if d.Coherence >= coherenceThreshold {
			status = dimensionStatusStrong
			analysis.StrongDimensions++
		} else {
			analysis.WeakDimensions++
		}

		analysis.Dimensions = append(analysis.Dimensions, DimensionAnalysis{
			Name:           d.Name,
			Coherence:      d.Coherence,
			SignalStrength: d.SignalStrength,
			BalanceScore:   round3(1 - math.Abs(d.Coherence-d.SignalStrength)),
			Status:         status,
		})

		if d.Coherence > strongest.Coherence {
			strongest = d
		}
		if d.Coherence < weakest.Coherence {
			weakest = d
		}
	}

	analysis.OverallCoherence = round3(mean(coherences))
	analysis.CoherenceVariance = round3(variance(coherences))
	analysis.SignalVariance = round3(variance(strengths))
	analysis.StrongestDimension = strongest.Name
	analysis.WeakestDimension = weakest.Name
	analysis.Recommendations = buildRecommendations(analysis)

	return analysis
}

// buildRecommendations derives improvement suggestions from the computed
// analysis metrics.
func buildRecommendations(analysis CoherenceAnalysis) []Recommendation {
	recommendations := []Recommendation{}

	if analysis.OverallCoherence < coherenceThreshold {
		recommendations = append(recommendations, Recommendation{
			Type:        "coherence_improvement",
			Priority:    "high",
			Description: "Overall brand coherence is below threshold. Focus on strengthening weak dimensions.",
			SuggestedActions: []string{
				"Review and clarify brand narrative",
				"Strengthen value proposition articulation",
				"Align emotional landscape with market position",
			},
		})
	}

	if analysis.SignalVariance > signalVarianceThreshold {
		recommendations = append(recommendations, Recommendation{
			Type:        "signal_balance",
			Priority:    "medium",
			Description: "Signal strength variance is high. Some dimensions may be over/under-emphasized.",
			SuggestedActions: []string{
				"Balance attention across all dimensions",
				"Strengthen weak signal dimensions",
				"Validate strong signals for sustainability",
			},
		})
	}

	weakNames := []string{}
	for _, d := range analysis.Dimensions {
		if d.Status == dimensionStatusWeak {
			weakNames = append(weakNames, d.Name)
		}
	}
	if len(weakNames) > 0 {
		actions := make([]string, 0, 3)
		for i, name := range weakNames {
			if i == 3 {
				break
			}
			actions = append(actions, fmt.Sprintf("Develop clearer definition for %s", name))
		}
		recommendations = append(recommendations, Recommendation{
			Type:             "dimension_strengthening",
			Priority:         "high",
			Description:      "Strengthen weak dimensions through focused development efforts",
			SuggestedActions: actions,
		})
	}

	return recommendations
}

// generateInsights produces templated findings per dimension state. Confidence
// grows with the distance from the triggering threshold.
func generateInsights(b brand.Brand, focusAreas []string) []Insight {
	dimensions := filterDimensions(b.Dimensions, focusAreas)
	insights := []Insight{}

	for _, d := range dimensions {
		if d.SignalStrength < lowSignalThreshold {
			insights = append(insights, Insight{
				Type:           insightTypeLowSignal,
				Dimension:      d.Name,
				Finding:        fmt.Sprintf("Signal strength for %s is weak in the market", d.Name),
				Recommendation: fmt.Sprintf("Amplify %s through consistent messaging", d.Name),
				Confidence:     thresholdConfidence(lowSignalThreshold, d.SignalStrength),
			})
		}

		if d.Coherence < lowCoherenceThreshold {
			insights = append(insights, Insight{
				Type:           insightTypeLowCoherence,
				Dimension:      d.Name,
				Finding:        fmt.Sprintf("%s lacks coherence across touchpoints", d.Name),
				Recommendation: fmt.Sprintf("Develop unified guidelines for %s", d.Name),
				Confidence:     thresholdConfidence(lowCoherenceThreshold, d.Coherence),
			})
		}

		if d.Coherence >= strongFoundationCoherence && d.SignalStrength >= strongFoundationSignal {
			insights = append(insights, Insight{
				Type:           insightTypeStrongFoundation,
				Dimension:      d.Name,
				Finding:        fmt.Sprintf("%s is a strong, coherent foundation", d.Name),
				Recommendation: fmt.Sprintf("Leverage %s to anchor weaker dimensions", d.Name),
				Confidence:     round3((d.Coherence + d.SignalStrength) / 2),
			})
		}

		if gap := math.Abs(d.Coherence - d.SignalStrength); gap > misalignmentThreshold {
			insights = append(insights, Insight{
				Type:           insightTypeMisalignment,
				Dimension:      d.Name,
				Finding:        fmt.Sprintf("Misalignment between internal coherence and market presence for %s", d.Name),
				Recommendation: fmt.Sprintf("Balance development of %s with its market communication", d.Name),
				Confidence:     thresholdConfidence(gap, misalignmentThreshold),
			})
		}
	}

	return insights
}

// filterDimensions restricts the dimensions to the named focus areas. An
// empty focus list keeps all dimensions.
func filterDimensions(dimensions []brand.Dimension, focusAreas []string) []brand.Dimension {
	if len(focusAreas) == 0 {
		return dimensions
	}

	focus := make(map[string]struct{}, len(focusAreas))
	for _, name := range focusAreas {
		focus[name] = struct{}{}
	}

	filtered := make([]brand.Dimension, 0, len(dimensions))
	for _, d := range dimensions {
		if _, ok := focus[d.Name]; ok {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// thresholdConfidence maps the distance below a threshold to a confidence
// score in [0.5, 1].
func thresholdConfidence(threshold, value float64) float64 {
	return round3(math.Min(1, 0.5+(threshold-value)))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func variance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sum := 0.0
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return sum / float64(len(values)-1)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

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
	"time"

	"github.com/domocarroll/subfracture-v3/internal/brand"
	"github.com/domocarroll/subfracture-v3/internal/stream"
	"github.com/domocarroll/subfracture-v3/internal/system/cache"
	"github.com/domocarroll/subfracture-v3/internal/system/error/serviceerror"
	"github.com/domocarroll/subfracture-v3/internal/system/log"
)

const loggerComponentName = "InsightService"

// InsightServiceInterface defines the interface for insight operations.
type InsightServiceInterface interface {
	AnalyzeCoherence(brandID string, focusAreas []string) (*CoherenceAnalysis, *serviceerror.ServiceError)
	GenerateInsights(brandID string, focusAreas []string) (*InsightResponse, *serviceerror.ServiceError)
}

// insightService provides brand analysis operations on top of the brand
// service. Unfocused insight results are cached with a short TTL.
type insightService struct {
	brandService brand.BrandServiceInterface
	cache        *cache.MemoryCache
	broker       *stream.Broker
}

// newInsightService creates a new instance of insightService.
func newInsightService(
	brandService brand.BrandServiceInterface,
	memoryCache *cache.MemoryCache,
	broker *stream.Broker,
) InsightServiceInterface {
	return &insightService{
		brandService: brandService,
		cache:        memoryCache,
		broker:       broker,
	}
}

// AnalyzeCoherence analyzes the coherence of a brand's dimensions.
func (is *insightService) AnalyzeCoherence(
	brandID string, focusAreas []string,
) (*CoherenceAnalysis, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	b, svcErr := is.brandService.GetBrand(brandID)
	if svcErr != nil {
		return nil, svcErr
	}

	analysis := analyzeCoherence(b, focusAreas)

	logger.Debug("Analyzed brand coherence", log.String(log.LoggerKeyBrandID, brandID),
		log.Float64("overallCoherence", analysis.OverallCoherence))
	return &analysis, nil
}

// GenerateInsights generates templated insights for a brand. Results without
// focus areas are served from the cache when fresh.
func (is *insightService) GenerateInsights(
	brandID string, focusAreas []string,
) (*InsightResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	cacheable := len(focusAreas) == 0
	cacheKey := insightCacheKeyPrefix + brandID

	if cacheable && is.cache != nil {
		if value, found := is.cache.Get(cacheKey); found {
			if response, ok := value.(*InsightResponse); ok {
				return response, nil
			}
		}
	}

	b, svcErr := is.brandService.GetBrand(brandID)
	if svcErr != nil {
		return nil, svcErr
	}

	response := &InsightResponse{
		BrandID:     brandID,
		Insights:    generateInsights(b, focusAreas),
		FocusAreas:  focusAreas,
		GeneratedAt: time.Now().UTC(),
	}

	if cacheable && is.cache != nil {
		is.cache.Set(cacheKey, response, insightCacheTTL)
	}

	if is.broker != nil {
		is.broker.Publish(stream.NewEvent(stream.EventInsightGenerated, brandID, map[string]interface{}{
			"brand_id":      brandID,
			"insight_count": len(response.Insights),
		}))
	}

	logger.Debug("Generated brand insights", log.String(log.LoggerKeyBrandID, brandID),
		log.Int("insightCount", len(response.Insights)))
	return response, nil
}

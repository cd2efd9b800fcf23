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
	"net/http"

	"github.com/domocarroll/subfracture-v3/internal/brand"
	"github.com/domocarroll/subfracture-v3/internal/stream"
	"github.com/domocarroll/subfracture-v3/internal/system/cache"
	"github.com/domocarroll/subfracture-v3/internal/system/middleware"
)

// Initialize initializes the insight service and registers its routes.
func Initialize(
	mux *http.ServeMux,
	brandService brand.BrandServiceInterface,
	memoryCache *cache.MemoryCache,
	broker *stream.Broker,
) InsightServiceInterface {
	service := newInsightService(brandService, memoryCache, broker)
	handler := newInsightHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the routes for insight operations.
func registerRoutes(mux *http.ServeMux, handler *insightHandler) {
	corsOptions := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /brands/{id}/insights",
		handler.handleInsightGetRequest, corsOptions))
	mux.HandleFunc(middleware.WithCORS("GET /brands/{id}/coherence",
		handler.handleCoherenceGetRequest, corsOptions))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /brands/{id}/insights",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, corsOptions))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /brands/{id}/coherence",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, corsOptions))
}

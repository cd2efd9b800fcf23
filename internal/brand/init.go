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

import (
	"net/http"

	"github.com/domocarroll/subfracture-v3/internal/stream"
	"github.com/domocarroll/subfracture-v3/internal/system/cache"
	"github.com/domocarroll/subfracture-v3/internal/system/middleware"
)

// Initialize initializes the brand service and registers its routes.
func Initialize(mux *http.ServeMux, memoryCache *cache.MemoryCache, broker *stream.Broker) BrandServiceInterface {
	store := newCacheBackedBrandStore(newBrandStore(), memoryCache)
	service := newBrandService(store, broker)
	handler := newBrandHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the routes for brand management operations.
func registerRoutes(mux *http.ServeMux, handler *brandHandler) {
	corsOptions1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /brands", handler.handleBrandPostRequest, corsOptions1))
	mux.HandleFunc(middleware.WithCORS("GET /brands", handler.handleBrandListRequest, corsOptions1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /brands",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, corsOptions1))

	corsOptions2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, POST, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /brands/{id}", handler.handleBrandGetRequest, corsOptions2))
	mux.HandleFunc(middleware.WithCORS("DELETE /brands/{id}", handler.handleBrandDeleteRequest, corsOptions2))
	mux.HandleFunc(middleware.WithCORS("PUT /brands/{id}/dimensions",
		handler.handleDimensionPutRequest, corsOptions2))
	mux.HandleFunc(middleware.WithCORS("POST /brands/{id}/snapshots",
		handler.handleSnapshotPostRequest, corsOptions2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /brands/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, corsOptions2))
}

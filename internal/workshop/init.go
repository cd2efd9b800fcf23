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

package workshop

import (
	"net/http"
	"time"

	"github.com/domocarroll/subfracture-v3/internal/stream"
	"github.com/domocarroll/subfracture-v3/internal/system/cache"
	"github.com/domocarroll/subfracture-v3/internal/system/config"
	"github.com/domocarroll/subfracture-v3/internal/system/middleware"
)

// Initialize initializes the workshop service and registers its routes.
func Initialize(
	mux *http.ServeMux, memoryCache *cache.MemoryCache, broker *stream.Broker,
) WorkshopServiceInterface {
	sessionTTL := cache.DefaultSessionTTL
	if configured := config.GetRuntime().Config.Cache.SessionTTL; configured > 0 {
		sessionTTL = time.Duration(configured) * time.Second
	}

	service := newWorkshopService(newWorkshopStore(), memoryCache, broker, sessionTTL)
	handler := newWorkshopHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the routes for workshop session operations.
func registerRoutes(mux *http.ServeMux, handler *workshopHandler) {
	corsOptions1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /workshops", handler.handleSessionPostRequest, corsOptions1))
	mux.HandleFunc(middleware.WithCORS("GET /workshops", handler.handleSessionListRequest, corsOptions1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /workshops",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, corsOptions1))

	corsOptions2 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /workshops/{id}", handler.handleSessionGetRequest, corsOptions2))
	mux.HandleFunc(middleware.WithCORS("POST /workshops/{id}/actions",
		handler.handleActionPostRequest, corsOptions2))
	mux.HandleFunc(middleware.WithCORS("DELETE /workshops/{id}",
		handler.handleSessionDeleteRequest, corsOptions2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /workshops/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, corsOptions2))
}

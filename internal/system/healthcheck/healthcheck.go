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

// Package healthcheck provides liveness and readiness probes for the server.
package healthcheck

import (
	"net/http"

	"github.com/domocarroll/subfracture-v3/internal/system/cache"
	"github.com/domocarroll/subfracture-v3/internal/system/database/model"
	"github.com/domocarroll/subfracture-v3/internal/system/database/provider"
	"github.com/domocarroll/subfracture-v3/internal/system/log"
	"github.com/domocarroll/subfracture-v3/internal/system/utils"
)

const loggerComponentName = "HealthCheckHandler"

// Status represents the health status of the server or one of its services.
type Status string

const (
	// StatusUp indicates a healthy state.
	StatusUp Status = "UP"
	// StatusDown indicates an unhealthy state.
	StatusDown Status = "DOWN"
)

// ServiceStatus holds the health status of an individual service.
type ServiceStatus struct {
	ServiceName string `json:"service_name"`
	Status      Status `json:"status"`
}

// ServerStatus holds the overall health status of the server.
type ServerStatus struct {
	Status          Status          `json:"status"`
	ServiceStatuses []ServiceStatus `json:"service_status,omitempty"`
	CacheStats      *cache.Stats    `json:"cache_stats,omitempty"`
}

// healthCheckHandler serves the liveness and readiness probes.
type healthCheckHandler struct {
	dbProvider provider.DBProviderInterface
	cache      *cache.MemoryCache
}

// Initialize registers the health check routes on the mux.
func Initialize(mux *http.ServeMux, memoryCache *cache.MemoryCache) {
	handler := &healthCheckHandler{
		dbProvider: provider.GetDBProvider(),
		cache:      memoryCache,
	}
	mux.HandleFunc("GET /health/liveness", handler.handleLiveness)
	mux.HandleFunc("GET /health/readiness", handler.handleReadiness)
}

// handleLiveness reports that the process is up.
func (h *healthCheckHandler) handleLiveness(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, ServerStatus{Status: StatusUp})
}

// handleReadiness probes the workshop datasource and reports cache usage.
func (h *healthCheckHandler) handleReadiness(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	dbStatus := StatusUp
	if err := h.probeDatabase(); err != nil {
		logger.Error("Database readiness probe failed", log.Error(err))
		dbStatus = StatusDown
	}

	status := ServerStatus{
		Status: dbStatus,
		ServiceStatuses: []ServiceStatus{
			{ServiceName: "workshop_db", Status: dbStatus},
		},
	}
	if h.cache != nil {
		stats := h.cache.Stats()
		status.CacheStats = &stats
	}

	statusCode := http.StatusOK
	if status.Status == StatusDown {
		statusCode = http.StatusServiceUnavailable
	}
	utils.WriteJSON(w, statusCode, status)
}

func (h *healthCheckHandler) probeDatabase() error {
	dbClient, err := h.dbProvider.GetDBClient("workshop")
	if err != nil {
		return err
	}
	_, err = dbClient.Query(model.DBQuery{ID: "HCQ-HEALTH-01", Query: "SELECT 1 as alive"})
	return err
}

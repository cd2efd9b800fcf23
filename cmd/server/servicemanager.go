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

package main

import (
	"net/http"

	"github.com/domocarroll/subfracture-v3/internal/brand"
	"github.com/domocarroll/subfracture-v3/internal/insight"
	"github.com/domocarroll/subfracture-v3/internal/stream"
	"github.com/domocarroll/subfracture-v3/internal/system/cache"
	"github.com/domocarroll/subfracture-v3/internal/system/config"
	"github.com/domocarroll/subfracture-v3/internal/system/healthcheck"
	"github.com/domocarroll/subfracture-v3/internal/workshop"
)

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux, cfg *config.Config, memoryCache *cache.MemoryCache) {
	broker := stream.Initialize(mux, stream.NewBroker(cfg.Stream.EventBufferSize))

	brandService := brand.Initialize(mux, memoryCache, broker)
	_ = workshop.Initialize(mux, memoryCache, broker)
	_ = insight.Initialize(mux, brandService, memoryCache, broker)

	healthcheck.Initialize(mux, memoryCache)
}

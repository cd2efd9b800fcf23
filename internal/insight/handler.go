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
	"strings"

	"github.com/domocarroll/subfracture-v3/internal/brand"
	"github.com/domocarroll/subfracture-v3/internal/system/error/serviceerror"
	"github.com/domocarroll/subfracture-v3/internal/system/log"
	"github.com/domocarroll/subfracture-v3/internal/system/utils"
)

const loggerComponentNameHandler = "InsightHandler"

// insightHandler is the HTTP handler for insight operations.
type insightHandler struct {
	service InsightServiceInterface
}

// newInsightHandler creates a new instance of insightHandler.
func newInsightHandler(service InsightServiceInterface) *insightHandler {
	return &insightHandler{service: service}
}

// handleInsightGetRequest handles the generate insights request.
func (ih *insightHandler) handleInsightGetRequest(w http.ResponseWriter, r *http.Request) {
	brandID := r.PathValue("id")
	if brandID == "" {
		ih.handleError(w, &brand.ErrorInvalidRequestFormat)
		return
	}

	response, svcErr := ih.service.GenerateInsights(brandID, parseFocusAreas(r))
	if svcErr != nil {
		ih.handleError(w, svcErr)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

// handleCoherenceGetRequest handles the coherence analysis request.
func (ih *insightHandler) handleCoherenceGetRequest(w http.ResponseWriter, r *http.Request) {
	brandID := r.PathValue("id")
	if brandID == "" {
		ih.handleError(w, &brand.ErrorInvalidRequestFormat)
		return
	}

	analysis, svcErr := ih.service.AnalyzeCoherence(brandID, parseFocusAreas(r))
	if svcErr != nil {
		ih.handleError(w, svcErr)
		return
	}

	utils.WriteJSON(w, http.StatusOK, analysis)
}

// parseFocusAreas parses the comma separated focus_areas query parameter.
func parseFocusAreas(r *http.Request) []string {
	raw := r.URL.Query().Get("focus_areas")
	if raw == "" {
		return nil
	}

	areas := []string{}
	for _, area := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(area); trimmed != "" {
			areas = append(areas, trimmed)
		}
	}
	return areas
}

// handleError maps a service error to an HTTP error response.
func (ih *insightHandler) handleError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		if svcErr.Code == brand.ErrorBrandNotFound.Code {
			statusCode = http.StatusNotFound
		} else {
			statusCode = http.StatusBadRequest
		}
	} else {
		logger.Error("Service error while handling insight request",
			log.String("code", svcErr.Code), log.String("description", svcErr.ErrorDescription))
	}

	utils.WriteJSONError(w, svcErr.Code, svcErr.Error, statusCode, svcErr.ErrorDescription)
}

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
	"net/url"
	"strconv"

	serverconst "github.com/domocarroll/subfracture-v3/internal/system/constants"
	"github.com/domocarroll/subfracture-v3/internal/system/error/serviceerror"
	"github.com/domocarroll/subfracture-v3/internal/system/log"
	"github.com/domocarroll/subfracture-v3/internal/system/utils"
)

const loggerComponentNameHandler = "BrandHandler"

// brandHandler is the HTTP handler for brand management operations.
type brandHandler struct {
	service BrandServiceInterface
}

// newBrandHandler creates a new instance of brandHandler.
func newBrandHandler(service BrandServiceInterface) *brandHandler {
	return &brandHandler{service: service}
}

// handleBrandPostRequest handles the create brand request.
func (bh *brandHandler) handleBrandPostRequest(w http.ResponseWriter, r *http.Request) {
	request, err := utils.DecodeJSONBody[BrandRequest](r)
	if err != nil {
		utils.WriteJSONError(w, ErrorInvalidRequestFormat.Code, ErrorInvalidRequestFormat.Error,
			http.StatusBadRequest, "Failed to parse request body: "+err.Error())
		return
	}

	created, svcErr := bh.service.CreateBrand(*request)
	if svcErr != nil {
		bh.handleError(w, svcErr)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, created)
}

// handleBrandListRequest handles the list brands request.
func (bh *brandHandler) handleBrandListRequest(w http.ResponseWriter, r *http.Request) {
	limit, offset, svcErr := parsePaginationParams(r.URL.Query())
	if svcErr != nil {
		bh.handleError(w, svcErr)
		return
	}

	response, svcErr := bh.service.GetBrandList(limit, offset)
	if svcErr != nil {
		bh.handleError(w, svcErr)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

// handleBrandGetRequest handles the get brand request.
func (bh *brandHandler) handleBrandGetRequest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		bh.handleError(w, &ErrorInvalidRequestFormat)
		return
	}

	b, svcErr := bh.service.GetBrand(id)
	if svcErr != nil {
		bh.handleError(w, svcErr)
		return
	}

	utils.WriteJSON(w, http.StatusOK, b)
}

// handleBrandDeleteRequest handles the delete brand request.
func (bh *brandHandler) handleBrandDeleteRequest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		bh.handleError(w, &ErrorInvalidRequestFormat)
		return
	}

	if svcErr := bh.service.DeleteBrand(id); svcErr != nil {
		bh.handleError(w, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleDimensionPutRequest handles the evolve dimension request.
func (bh *brandHandler) handleDimensionPutRequest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		bh.handleError(w, &ErrorInvalidRequestFormat)
		return
	}

	request, err := utils.DecodeJSONBody[EvolveDimensionRequest](r)
	if err != nil {
		utils.WriteJSONError(w, ErrorInvalidRequestFormat.Code, ErrorInvalidRequestFormat.Error,
			http.StatusBadRequest, "Failed to parse request body: "+err.Error())
		return
	}

	response, svcErr := bh.service.EvolveDimension(id, *request)
	if svcErr != nil {
		bh.handleError(w, svcErr)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

// handleSnapshotPostRequest handles the create snapshot request.
func (bh *brandHandler) handleSnapshotPostRequest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		bh.handleError(w, &ErrorInvalidRequestFormat)
		return
	}

	request, err := utils.DecodeJSONBody[SnapshotRequest](r)
	if err != nil {
		utils.WriteJSONError(w, ErrorInvalidRequestFormat.Code, ErrorInvalidRequestFormat.Error,
			http.StatusBadRequest, "Failed to parse request body: "+err.Error())
		return
	}

	snapshot, svcErr := bh.service.CreateSnapshot(id, *request)
	if svcErr != nil {
		bh.handleError(w, svcErr)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, snapshot)
}

// handleError maps a service error to an HTTP error response.
func (bh *brandHandler) handleError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		switch svcErr.Code {
		case ErrorBrandNotFound.Code, ErrorDimensionNotFound.Code:
			statusCode = http.StatusNotFound
		case ErrorBrandNameConflict.Code:
			statusCode = http.StatusConflict
		default:
			statusCode = http.StatusBadRequest
		}
	} else {
		logger.Error("Service error while handling brand request",
			log.String("code", svcErr.Code), log.String("description", svcErr.ErrorDescription))
	}

	utils.WriteJSONError(w, svcErr.Code, svcErr.Error, statusCode, svcErr.ErrorDescription)
}

// parsePaginationParams parses limit and offset query parameters.
func parsePaginationParams(query url.Values) (int, int, *serviceerror.ServiceError) {
	limit := serverconst.DefaultPageSize
	offset := 0

	if limitStr := query.Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			return 0, 0, &ErrorInvalidLimit
		}
		limit = parsed
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil {
			return 0, 0, &ErrorInvalidOffset
		}
		offset = parsed
	}

	return limit, offset, nil
}

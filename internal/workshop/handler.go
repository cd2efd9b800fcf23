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

	"github.com/domocarroll/subfracture-v3/internal/system/error/serviceerror"
	"github.com/domocarroll/subfracture-v3/internal/system/log"
	"github.com/domocarroll/subfracture-v3/internal/system/utils"
)

const loggerComponentNameHandler = "WorkshopHandler"

// workshopHandler is the HTTP handler for workshop session operations.
type workshopHandler struct {
	service WorkshopServiceInterface
}

// newWorkshopHandler creates a new instance of workshopHandler.
func newWorkshopHandler(service WorkshopServiceInterface) *workshopHandler {
	return &workshopHandler{service: service}
}

// handleSessionPostRequest handles the create session request.
func (wh *workshopHandler) handleSessionPostRequest(w http.ResponseWriter, r *http.Request) {
	request, err := utils.DecodeJSONBody[CreateSessionRequest](r)
	if err != nil {
		utils.WriteJSONError(w, ErrorInvalidRequestFormat.Code, ErrorInvalidRequestFormat.Error,
			http.StatusBadRequest, "Failed to parse request body: "+err.Error())
		return
	}

	session, svcErr := wh.service.CreateSession(*request)
	if svcErr != nil {
		wh.handleError(w, svcErr)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, session)
}

// handleSessionListRequest handles the list active sessions request.
func (wh *workshopHandler) handleSessionListRequest(w http.ResponseWriter, r *http.Request) {
	response, svcErr := wh.service.ListActiveSessions()
	if svcErr != nil {
		wh.handleError(w, svcErr)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

// handleSessionGetRequest handles the get session request.
func (wh *workshopHandler) handleSessionGetRequest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		wh.handleError(w, &ErrorInvalidRequestFormat)
		return
	}

	includeEvents := r.URL.Query().Get("include_events") == "true"

	response, svcErr := wh.service.GetSession(id, includeEvents)
	if svcErr != nil {
		wh.handleError(w, svcErr)
		return
	}

	utils.WriteJSON(w, http.StatusOK, response)
}

// handleActionPostRequest handles the participant action request.
func (wh *workshopHandler) handleActionPostRequest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		wh.handleError(w, &ErrorInvalidRequestFormat)
		return
	}

	request, err := utils.DecodeJSONBody[ParticipantActionRequest](r)
	if err != nil {
		utils.WriteJSONError(w, ErrorInvalidRequestFormat.Code, ErrorInvalidRequestFormat.Error,
			http.StatusBadRequest, "Failed to parse request body: "+err.Error())
		return
	}

	session, svcErr := wh.service.AddParticipantAction(id, *request)
	if svcErr != nil {
		wh.handleError(w, svcErr)
		return
	}

	utils.WriteJSON(w, http.StatusOK, session)
}

// handleSessionDeleteRequest handles the end session request.
func (wh *workshopHandler) handleSessionDeleteRequest(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		wh.handleError(w, &ErrorInvalidRequestFormat)
		return
	}

	if svcErr := wh.service.EndSession(id); svcErr != nil {
		wh.handleError(w, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleError maps a service error to an HTTP error response.
func (wh *workshopHandler) handleError(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentNameHandler))

	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		switch svcErr.Code {
		case ErrorSessionNotFound.Code:
			statusCode = http.StatusNotFound
		case ErrorSessionFull.Code, ErrorSessionNotActive.Code:
			statusCode = http.StatusConflict
		default:
			statusCode = http.StatusBadRequest
		}
	} else {
		logger.Error("Service error while handling workshop request",
			log.String("code", svcErr.Code), log.String("description", svcErr.ErrorDescription))
	}

	utils.WriteJSONError(w, svcErr.Code, svcErr.Error, statusCode, svcErr.ErrorDescription)
}

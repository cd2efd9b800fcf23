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

// Package utils provides shared helper functions for the server.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/domocarroll/subfracture-v3/internal/system/constants"
	"github.com/domocarroll/subfracture-v3/internal/system/error/apierror"
	"github.com/domocarroll/subfracture-v3/internal/system/log"
)

// DecodeJSONBody decodes the request body into a value of type T.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	var value T
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("failed to decode request body: %w", err)
	}
	return &value, nil
}

// WriteJSON writes the given value as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, value interface{}) {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		log.GetLogger().Error("Failed to encode response body", log.Error(err))
	}
}

// WriteJSONError writes an error response in JSON format with the given status code.
func WriteJSONError(w http.ResponseWriter, code string, message string, statusCode int, description string) {
	errResp := apierror.ErrorResponse{
		Code:        code,
		Message:     message,
		Description: description,
	}
	WriteJSON(w, statusCode, errResp)
}

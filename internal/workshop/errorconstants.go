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
	"errors"

	"github.com/domocarroll/subfracture-v3/internal/system/error/serviceerror"
)

// ErrSessionNotFound is the sentinel error returned by the store when a session does not exist.
var ErrSessionNotFound = errors.New("workshop session not found")

// Client errors for workshop session operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WKS-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed, contains invalid data, or required fields are missing/empty",
	}
	// ErrorSessionNotFound is the error returned when a workshop session is not found.
	ErrorSessionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WKS-1002",
		Error:            "Workshop session not found",
		ErrorDescription: "The workshop session with the specified id does not exist",
	}
	// ErrorSessionFull is the error returned when a session is at capacity.
	ErrorSessionFull = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WKS-1003",
		Error:            "Workshop session full",
		ErrorDescription: "The workshop session has reached its maximum number of participants",
	}
	// ErrorSessionNotActive is the error returned when acting on a non-active session.
	ErrorSessionNotActive = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "WKS-1004",
		Error:            "Workshop session not active",
		ErrorDescription: "The workshop session has already ended",
	}
)

// Server errors for workshop session operations.
var (
	// ErrorInternalServerError is the generic server error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "WKS-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)

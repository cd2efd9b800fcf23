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
	"errors"

	"github.com/domocarroll/subfracture-v3/internal/system/error/serviceerror"
)

// ErrBrandNotFound is the sentinel error returned by the store when a brand does not exist.
var ErrBrandNotFound = errors.New("brand not found")

// Client errors for brand management operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "BRD-1001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed, contains invalid data, or required fields are missing/empty",
	}
	// ErrorBrandNotFound is the error returned when a brand is not found.
	ErrorBrandNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "BRD-1002",
		Error:            "Brand not found",
		ErrorDescription: "The brand with the specified id does not exist",
	}
	// ErrorBrandNameConflict is the error returned when a brand name already exists.
	ErrorBrandNameConflict = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "BRD-1003",
		Error:            "Brand name conflict",
		ErrorDescription: "A brand with the same name already exists",
	}
	// ErrorDimensionNotFound is the error returned when a dimension is not found in the brand.
	ErrorDimensionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "BRD-1004",
		Error:            "Dimension not found",
		ErrorDescription: "The named dimension does not exist in the brand",
	}
	// ErrorInvalidLimit is the error returned when the pagination limit is invalid.
	ErrorInvalidLimit = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "BRD-1005",
		Error:            "Invalid pagination limit",
		ErrorDescription: "The limit must be between 1 and the maximum page size",
	}
	// ErrorInvalidOffset is the error returned when the pagination offset is invalid.
	ErrorInvalidOffset = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "BRD-1006",
		Error:            "Invalid pagination offset",
		ErrorDescription: "The offset must be non-negative",
	}
)

// Server errors for brand management operations.
var (
	// ErrorInternalServerError is the generic server error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "BRD-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)

// Copyright (c) 2025, Industrial Edge Works.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/industrial-edge/bootguard/pkg/errors"
	"github.com/industrial-edge/bootguard/pkg/serializer"
)

// ErrCodeMethodNotAllowed is server-surface only and has no equivalent in
// the domain error codes.
const ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"

// HTTPStatusFromCode maps a domain error code to an HTTP status.
func HTTPStatusFromCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidRequest, errors.ErrCodeConfiguration:
		return http.StatusBadRequest
	case errors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case errors.ErrCodeUnavailable, errors.ErrCodeSensorUnavailable:
		return http.StatusServiceUnavailable
	case errors.ErrCodeTransient, errors.ErrCodeSafetyAbort, errors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// RetryableFromCode reports whether a client may usefully retry a request
// that failed with the given domain error code.
func RetryableFromCode(code errors.ErrorCode) bool {
	switch code {
	case errors.ErrCodeTransient, errors.ErrCodeRateLimitExceeded,
		errors.ErrCodeUnavailable, errors.ErrCodeSensorUnavailable,
		errors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteStructuredError writes a domain error with status and retryability
// derived from its code.
func WriteStructuredError(w http.ResponseWriter, r *http.Request, err *errors.StructuredError) {
	WriteError(w, r, HTTPStatusFromCode(err.Code), string(err.Code),
		err.Message, RetryableFromCode(err.Code), err.Context)
}

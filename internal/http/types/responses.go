// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/community-service/internal/types"
)

const (
	CodeInternal = "internal_error"

	internalMessage = "internal server error"
)

// Response is the envelope of every successful API response.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse never carries more than the fixed message of its code.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorMapping struct {
	err     error
	status  int
	message string
}

// order matters, a provisioning failure may wrap any of the others
var errorMappings = []errorMapping{
	{types.ErrProvisionFailed, http.StatusInternalServerError, "community could not be provisioned"},
	{types.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
	{types.ErrRevoked, http.StatusUnauthorized, "token has been revoked"},
	{types.ErrExpired, http.StatusUnauthorized, "token has expired"},
	{types.ErrMalformedToken, http.StatusUnauthorized, "token is not valid"},
	{types.ErrNotFound, http.StatusNotFound, "resource not found"},
	{types.ErrAccessDenied, http.StatusForbidden, "access denied"},
	{types.ErrForbidden, http.StatusForbidden, "forbidden"},
	{types.ErrValidation, http.StatusBadRequest, "invalid request"},
	{types.ErrConflict, http.StatusConflict, "resource already exists"},
}

// ErrorResponseFromError maps err to its public representation.
// Unknown errors become a 500 with a generic message.
func ErrorResponseFromError(err error) ErrorResponse {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return ErrorResponse{
				Status:  m.status,
				Code:    m.err.Error(),
				Message: m.message,
			}
		}
	}

	return ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: internalMessage,
	}
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(v)
}

// WriteResponse wraps data in a Response envelope.
func WriteResponse(w http.ResponseWriter, status int, message string, data any) error {
	return WriteJSON(w, status, Response{Data: data, Message: message, Status: status})
}

// WriteError writes the public representation of err and returns it.
func WriteError(w http.ResponseWriter, err error) ErrorResponse {
	resp := ErrorResponseFromError(err)
	_ = WriteJSON(w, resp.Status, resp)

	return resp
}

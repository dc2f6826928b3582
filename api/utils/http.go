// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package utils holds the handler plumbing shared by the read API routes.
package utils

import (
	"encoding/json"
	"errors"
	"net/http"
)

// JSONContentType is set on every JSON response.
const JSONContentType = "application/json; charset=utf-8"

// statusError carries the status a handler wants to respond with.
type statusError struct {
	cause  error
	status int
}

func (e *statusError) Error() string { return e.cause.Error() }
func (e *statusError) Unwrap() error { return e.cause }

// HTTPError tags cause with an HTTP status.
func HTTPError(cause error, status int) error {
	return &statusError{cause: cause, status: status}
}

// BadRequest tags cause with 400.
func BadRequest(cause error) error { return HTTPError(cause, http.StatusBadRequest) }

// NotFound tags cause with 404.
func NotFound(cause error) error { return HTTPError(cause, http.StatusNotFound) }

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// WrapHandlerFunc adapts f to http.HandlerFunc. A returned error is written
// as plain text, with the status from HTTPError anywhere in its chain, or
// 500 otherwise.
func WrapHandlerFunc(f HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := f(w, r)
		if err == nil {
			return
		}
		status := http.StatusInternalServerError
		var se *statusError
		if errors.As(err, &se) {
			status = se.status
			err = se.cause
		}
		http.Error(w, err.Error(), status)
	}
}

// WriteJSON encodes obj as the JSON response body.
func WriteJSON(w http.ResponseWriter, obj any) error {
	w.Header().Set("Content-Type", JSONContentType)
	return json.NewEncoder(w).Encode(obj)
}

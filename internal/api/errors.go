package api

import (
	"encoding/json"
	"net/http"
)

// Stable machine-readable error codes carried alongside the human message.
const (
	codeValidation   = "VALIDATION_ERROR"
	codeUnauthorized = "UNAUTHORIZED"
	codeNotFound     = "NOT_FOUND"
	codeInternal     = "INTERNAL_ERROR"
)

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Code: code})
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeHTTPError writes the framework-level error envelope used for
// unmatched routes and disallowed methods.
func writeHTTPError(w http.ResponseWriter, status int) {
	writeJSON(w, status, HTTPErrorResponse{
		Code:        status,
		Name:        http.StatusText(status),
		Description: httpErrorDescription(status),
	})
}

func httpErrorDescription(status int) string {
	switch status {
	case http.StatusNotFound:
		return "The requested URL was not found on the server."
	case http.StatusMethodNotAllowed:
		return "The method is not allowed for the requested URL."
	default:
		return http.StatusText(status)
	}
}

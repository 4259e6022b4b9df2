// A NEW file with helper functions for sending standardized JSON responses.

package api

import (
	"encoding/json"
	"net/http"
)

// apiError is the body of every error response: a stable machine-readable
// code plus a message fit to show the user.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithJSON writes a JSON response with the given status code and payload.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		// If marshaling fails, return an error response
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to marshal response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// RespondWithError writes a standardized JSON error response of the shape
// {"error": {"code": ..., "message": ...}}.
func RespondWithError(w http.ResponseWriter, status int, code, message string) {
	RespondWithJSON(w, status, map[string]apiError{"error": {Code: code, Message: message}})
}

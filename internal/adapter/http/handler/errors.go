package handler

import (
	"net/http"
	"strconv"
)

// retryAfter is the hint sent with 503 responses while the dataset is loading, in seconds.
const retryAfter = 2

func errorResponse(w http.ResponseWriter, status int, message any) {
	env := envelope{"error": message}

	// Write the response using the writeJSON() helper. If this happens to return an
	// error then log it, and fall back to sending the client an empty response with a
	// 500 Internal Server Error status code.
	if err := writeJSON(w, status, env, nil); err != nil {
		w.WriteHeader(500)
	}
}

// notLoadedResponse returns 503 ServiceUnavailable while the provider has no document.
// A loading provider also gets a Retry-After header.
func notLoadedResponse(w http.ResponseWriter, loading bool, env envelope) {
	var headers http.Header
	if loading {
		headers = http.Header{"Retry-After": []string{strconv.Itoa(retryAfter)}}
	}
	if err := writeJSON(w, http.StatusServiceUnavailable, env, headers); err != nil {
		w.WriteHeader(500)
	}
}

// internalErrorResponse returns 500 InternalServerError status
func internalErrorResponse(w http.ResponseWriter, message any) {
	errorResponse(w, http.StatusInternalServerError, message)
}

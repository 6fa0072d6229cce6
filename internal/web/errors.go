package web

// errors.go provides unified error response handling for the web layer.
// Technical details are logged server-side with the request ID; clients
// get a stable JSON shape with a machine-readable code.

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/JonMunkholm/citystats/internal/logging"
	"github.com/JonMunkholm/citystats/internal/region"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// badParamError reports an unparseable query parameter.
type badParamError struct {
	param string
	value string
}

func (e *badParamError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %q", e.value, e.param)
}

// respondError logs the technical error and writes a response appropriate
// for the client: JSON for API-style requests, plain text otherwise.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	logger := logging.FromContext(r.Context())
	logger.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", errorCode(err),
	)

	if wantsJSON(r) {
		respondJSON(w, statusCode, ErrorResponse{Error: err.Error(), Code: errorCode(err)})
		return
	}
	http.Error(w, err.Error(), statusCode)
}

// errorCode classifies an error for client-side handling.
func errorCode(err error) string {
	var invalid *region.InvalidRecordError
	var badParam *badParamError
	switch {
	case errors.As(err, &invalid):
		return "invalid_record"
	case errors.As(err, &badParam):
		return "bad_parameter"
	default:
		return "internal"
	}
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// wantsJSON checks whether the client prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}
	return strings.HasPrefix(r.URL.Path, "/api/")
}

package http

import (
	"encoding/json"
	"net/http"

	"kbase"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	kbase.ECONFLICT:        http.StatusConflict,
	kbase.EEMPTY:           http.StatusBadRequest,
	kbase.EFORBIDDEN:       http.StatusForbidden,
	kbase.EINVALID:         http.StatusBadRequest,
	kbase.ENOTFOUND:        http.StatusNotFound,
	kbase.EUNAUTHENTICATED: http.StatusUnauthorized,
	kbase.EUNAVAILABLE:     http.StatusServiceUnavailable,
	kbase.EUNPROCESSABLE:   http.StatusBadRequest,
}

// errorResponse is the JSON body of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

// errorStatus returns the HTTP status for an error code.
func errorStatus(code string) int {
	if status, ok := codes[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, message := kbase.ErrorCode(err), kbase.ErrorMessage(err)
	status := errorStatus(code)
	if status >= http.StatusInternalServerError {
		s.Logger.Error("http request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package web

import (
	"encoding/json"
	"log"
	"net/http"
)

type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a JSON error response with the given message, machine
// code, and HTTP status. The request ID is echoed back so client reports can
// be correlated with server logs.
func writeError(w http.ResponseWriter, r *http.Request, msg, code string, status int) {
	writeJSON(w, status, errorBody{
		Error:     msg,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

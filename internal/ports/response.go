package ports

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Cause   string `json:"cause"`
}

func writeErrorResponse(w http.ResponseWriter, statusCode int, cause string) {
	response, err := json.Marshal(errorResponse{Success: false, Cause: cause})
	if err != nil {
		response = []byte(`{"success":false,"cause":"internal server error"}`)
		statusCode = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

func writeRateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(w, http.StatusTooManyRequests, "rate limit exceeded")
}

package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gustavoSo3/adogtame-back/util"
	"github.com/gustavoSo3/adogtame-back/util/tracing"
)

// ServerResponse is the envelope every handler returns. Failures carry
// {code, err}; successes carry {code, message, data}.
type ServerResponse struct {
	Status     string      `json:"status"`
	Code       int         `json:"code"`
	Message    string      `json:"message,omitempty"`
	Err        string      `json:"err,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	StatusCode int         `json:"-"`
}

// respondWithError logs the underlying error against the request id and
// returns the client-facing response. Store errors never surface raw.
func respondWithError(err error, message string, status string, tc *tracing.Context) *ServerResponse {
	if err != nil {
		requestID := ""
		if tc != nil {
			requestID = tc.RequestID
		}
		log.Printf("[%s] %s: %v", requestID, message, err)
	}

	code := util.StatusCode(status)
	return &ServerResponse{
		Status:     status,
		Code:       code,
		Err:        message,
		StatusCode: code,
	}
}

func writeJSONResponse(w http.ResponseWriter, resp []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(resp)
}

func writeErrorResponse(w http.ResponseWriter, err error, status string, message string) {
	if err != nil {
		log.Printf("%s: %v", message, err)
	}

	code := util.StatusCode(status)
	resp := ServerResponse{
		Status: status,
		Code:   code,
		Err:    message,
	}

	respByte, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		http.Error(w, message, code)
		return
	}
	writeJSONResponse(w, respByte, code)
}

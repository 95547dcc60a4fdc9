package httpresponse

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorResponse struct {
	Message    string `json:"message"`
	ApiVersion string `json:"api_version,omitempty"`
	BotID      string `json:"bot_id,omitempty"`
}

const INTERNALERRORJSON = "{\"message\": \"Internal server error\"}"

func WriteResponseWithStatus(w http.ResponseWriter, status int, body any) {
	jsonByte, err := json.Marshal(body)
	if err != nil {
		WriteInternalErrorResponse(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(jsonByte)
}

func WriteErrorResponse(w http.ResponseWriter, status int, resp ErrorResponse) {
	WriteResponseWithStatus(w, status, resp)
}

func WriteInternalErrorResponse(w http.ResponseWriter) {
	// like http.Error, only the Content-type differs
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintln(w, INTERNALERRORJSON)
}

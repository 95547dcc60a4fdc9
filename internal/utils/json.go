package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MaxRequestBodyBytes caps every request body read through this package.
const MaxRequestBodyBytes = 1 << 20

// DecodeJSONRequest ignores unknown fields, like the web client's original server.
func DecodeJSONRequest(r *http.Request, dst interface{}) error {
	body, err := ReadRequestBody(r)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}

	if err = json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

// ReadRequestBody fails with *http.MaxBytesError past MaxRequestBodyBytes.
func ReadRequestBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(http.MaxBytesReader(nil, r.Body, MaxRequestBodyBytes))
}

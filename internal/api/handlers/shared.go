package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxRequestBody caps request bodies at 1 MiB; every payload this API
// accepts is far smaller.
const maxRequestBody = 1 << 20

// parseJSON decodes the request body into a value of type T. Unknown fields
// are rejected so typos in field names surface as 400s instead of silently
// dropped input.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&v); err != nil {
		return v, fmt.Errorf("failed to decode request body: %w", err)
	}
	return v, nil
}

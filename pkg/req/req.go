package req

import (
	"encoding/json"
	"errors"
	"io"
)

// Decode reads a JSON body into T. An empty body yields the zero value.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if body == nil {
		return payload, nil
	}
	err := json.NewDecoder(body).Decode(&payload)
	if errors.Is(err, io.EOF) {
		return payload, nil
	}
	return payload, err
}

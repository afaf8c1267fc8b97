// Package decode reads JSON request bodies whose fields are validated
// individually by the caller.
package decode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMissingBody indicates the request carried no JSON object.
	ErrMissingBody = errors.New("missing JSON body")

	// ErrMissingField indicates a required field is absent.
	ErrMissingField = errors.New("missing field")
)

// Fields decodes a JSON object into raw field values and checks that every
// required field is present. An empty body, a non-object body and malformed
// JSON all report ErrMissingBody.
func Fields(r io.Reader, required ...string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingBody, err)
	}
	if fields == nil {
		return nil, ErrMissingBody
	}

	for _, name := range required {
		if _, ok := fields[name]; !ok {
			return nil, fmt.Errorf("%w: %q in JSON body", ErrMissingField, name)
		}
	}
	return fields, nil
}

// Field unmarshals a single raw field into T.
func Field[T any](fields map[string]json.RawMessage, name string) (T, error) {
	var v T
	raw, ok := fields[name]
	if !ok {
		return v, fmt.Errorf("%w: %q", ErrMissingField, name)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("field %q: %w", name, err)
	}
	return v, nil
}

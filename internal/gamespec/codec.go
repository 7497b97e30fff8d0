package gamespec

import (
	"encoding/json"

	"github.com/louisbranch/gameforge/internal/platform/errors"
)

// Decode parses and validates a specification from its JSON encoding.
// Decode failures surface as serialization errors; vocabulary violations
// surface as malformed-specification errors.
func Decode(data []byte) (GameSpecification, error) {
	var spec GameSpecification
	if err := json.Unmarshal(data, &spec); err != nil {
		return GameSpecification{}, errors.Wrap(errors.CodeEncodingInvalidJSON, "decode game specification", err)
	}
	if err := spec.Validate(); err != nil {
		return GameSpecification{}, err
	}
	return spec, nil
}

// Encode renders the specification as JSON with stable field names.
func Encode(spec GameSpecification) ([]byte, error) {
	data, err := json.Marshal(spec)
	if err != nil {
		return nil, errors.Wrap(errors.CodeEncodingWriteFailed, "encode game specification", err)
	}
	return data, nil
}

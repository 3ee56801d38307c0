package studyv1

import (
	"encoding/json"
	"fmt"
)

// Codec marshals plain Go messages as JSON under the "json" codec name, so
// Connect clients speak application/json.
type Codec struct{}

func (Codec) Name() string {
	return "json"
}

func (Codec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(%T) > %w", message, err)
	}
	return data, nil
}

func (Codec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("json.Unmarshal(%T) > %w", message, err)
	}
	return nil
}

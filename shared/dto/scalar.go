package dto

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Scalar is a request field kept exactly as the client sent it. It is bound untyped,
// so PostgreSQL decides whether the value fits the column.
type Scalar struct {
	raw json.RawMessage
}

// NewScalar encodes v the way a client would have sent it.
func NewScalar(v any) *Scalar {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return &Scalar{raw: raw}
}

func (s *Scalar) UnmarshalJSON(data []byte) error {
	s.raw = append(s.raw[:0], data...)

	return nil
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if len(s.raw) == 0 {
		return []byte("null"), nil
	}

	return s.raw, nil
}

// Value implements driver.Valuer. JSON strings are unquoted, null is NULL and every
// other literal is passed as its text.
func (s Scalar) Value() (driver.Value, error) {
	raw := bytes.TrimSpace(s.raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil //nolint:nilnil
	}

	if raw[0] == '"' {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("failed to read string value: %w", err)
		}

		return text, nil
	}

	return string(raw), nil
}

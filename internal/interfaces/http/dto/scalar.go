package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Scalar is a request value that may arrive as a query parameter, a form
// field, a JSON string or a JSON number. It keeps the trimmed textual form so
// validation tags apply the same way regardless of transport. JSON null and
// absent values are empty.
type Scalar string

// UnmarshalJSON accepts strings, numbers and null. Booleans, arrays and
// objects keep their raw text so validation rejects them with a field message.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(strings.TrimSpace(str))
	default:
		*s = Scalar(data)
	}
	return nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for query and form values.
func (s *Scalar) UnmarshalParam(param string) error {
	*s = Scalar(strings.TrimSpace(param))
	return nil
}

// String returns the textual value
func (s Scalar) String() string {
	return string(s)
}

// IsSet reports whether a non-blank value was supplied
func (s Scalar) IsSet() bool {
	return s != ""
}

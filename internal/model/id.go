package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a platform-assigned identifier kept in its decimal text form,
// so values wider than 64 bits survive a round trip.
type ID string

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// Int64 parses the identifier as a signed 64-bit integer.
func (id ID) Int64() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(string(id)), 10, 64)
}

// UnmarshalJSON accepts both JSON numbers and JSON strings.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode id: %w", err)
		}

		*id = ID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}

	*id = ID(n.String())
	return nil
}

// MarshalJSON always emits a string to avoid precision loss in consumers.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

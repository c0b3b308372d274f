// Package models defines the client-side data shapes exchanged with the
// challenge backend.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a backend identifier. The API may send ids as JSON numbers or
// strings; both decode into the same textual form.
type ID string

// UnmarshalJSON accepts "42", 42 and null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", b, err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a record id. The backend sends integers, some variants send strings.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("model: invalid id %s", data)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

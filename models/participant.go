package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParticipantID is an opaque participant key. Clients may send it as a JSON
// string or number; numbers keep their literal decimal form.
type ParticipantID string

func (p *ParticipantID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*p = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = ParticipantID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("participant id must be a string or number: %w", err)
	}
	*p = ParticipantID(n.String())
	return nil
}

func (p ParticipantID) String() string { return string(p) }

package pipeline

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// DecodeRecord turns one delivered record body into the raw JSON objects of
// its events. Bodies are commonly base64-encoded JSON; a body that is not
// valid base64 is tried as plain JSON text before being rejected. Any
// failure here fails the whole record; there is no partial decode.
func DecodeRecord(body []byte) ([]json.RawMessage, error) {
	data, err := base64.StdEncoding.DecodeString(string(body))
	if err != nil {
		data = body
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("record body is not valid UTF-8 text")
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("record body is empty")
	}

	if trimmed[0] == '[' {
		var events []json.RawMessage
		if err := json.Unmarshal(trimmed, &events); err != nil {
			return nil, fmt.Errorf("failed to decode event array: %w", err)
		}
		return events, nil
	}

	var event json.RawMessage
	if err := json.Unmarshal(trimmed, &event); err != nil {
		return nil, fmt.Errorf("failed to decode event object: %w", err)
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("record body is not an event object or array")
	}
	return []json.RawMessage{event}, nil
}

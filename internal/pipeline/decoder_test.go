package pipeline

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRecord_Base64SingleObject(t *testing.T) {
	body := base64.StdEncoding.EncodeToString([]byte(`{"eventType":"PAGE_VIEW"}`))

	events, err := DecodeRecord([]byte(body))

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.JSONEq(t, `{"eventType":"PAGE_VIEW"}`, string(events[0]))
}

func TestDecodeRecord_Base64Array(t *testing.T) {
	body := base64.StdEncoding.EncodeToString([]byte(`[{"eventType":"SESSION_START"},{"eventType":"CLICK"}]`))

	events, err := DecodeRecord([]byte(body))

	assert.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestDecodeRecord_PlainJSONFallback(t *testing.T) {
	events, err := DecodeRecord([]byte(`{"eventType":"CLICK"}`))

	assert.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestDecodeRecord_EmptyArray(t *testing.T) {
	events, err := DecodeRecord([]byte(`[]`))

	assert.NoError(t, err)
	assert.Empty(t, events)
}

func TestDecodeRecord_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "definitely not json"},
		{"base64 of garbage", base64.StdEncoding.EncodeToString([]byte("garbage"))},
		{"empty", ""},
		{"truncated object", `{"eventType":`},
		{"scalar value", `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := DecodeRecord([]byte(tt.body))
			assert.Error(t, err)
			assert.Nil(t, events)
		})
	}
}

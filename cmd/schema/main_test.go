package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSchema(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSchema(&buf))

	var schema struct {
		Ref  string                     `json:"$ref"`
		Defs map[string]json.RawMessage `json:"$defs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &schema))
	assert.Equal(t, "#/$defs/Config", schema.Ref)
	for _, def := range []string{"Config", "ServerConfig", "DiscoveryConfig", "EventsConfig", "HintsConfig"} {
		assert.Contains(t, schema.Defs, def)
	}

	err := writeSchema(failingWriter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

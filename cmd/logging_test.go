package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	newLogger(buf, false, false).Debug("hidden")
	newLogger(buf, false, false).Info("shown", "slot", "cpu")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=INFO msg=shown slot=cpu")

	buf.Reset()
	newLogger(buf, true, true).Debug("traced")
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "traced", record["msg"])
	assert.Contains(t, record, "source")
}

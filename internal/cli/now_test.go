package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowText(t *testing.T) {
	output, err := runCommand(t, "text", "now")
	require.NoError(t, err)

	assert.Contains(t, output, "system:")
	assert.Contains(t, output, "steady:")
	assert.Contains(t, output, "date:")
}

func TestNowJSON(t *testing.T) {
	output, err := runCommand(t, "json", "now")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	require.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	// The reading postdates 2020-01-01 on any sane host clock.
	assert.Greater(t, data["system_nanos"].(float64), float64(1_577_836_800_000_000_000))
	assert.NotEmpty(t, data["date"])
	assert.NotEmpty(t, data["weekday"])
}

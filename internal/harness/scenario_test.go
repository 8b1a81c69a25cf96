package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenarioValid(t *testing.T) {
	scenario, err := LoadScenario(filepath.Join("testdata", "scenarios", "calendar_anchors.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "calendar_anchors", scenario.Name)
	assert.NotEmpty(t, scenario.Description)
	assert.Nil(t, scenario.LeapTable)
	require.Len(t, scenario.Steps, 10)

	first := scenario.Steps[0]
	assert.Equal(t, OpDateToSerial, first.Op)
	require.NotNil(t, first.Date)
	assert.Equal(t, int64(1970), first.Date.Year)
	assert.Equal(t, "0", first.Expect)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join("testdata", "scenarios", "does_not_exist.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenarioUnknownField(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: "unknown top-level key"
step:
  - op: weekday
    serial: 0
    expect: "Thursday"
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenarioValidation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing_name",
			doc:     "description: d\nsteps:\n  - op: weekday\n    serial: 0\n    expect: \"Thursday\"\n",
			wantErr: "name is required",
		},
		{
			name:    "missing_description",
			doc:     "name: n\nsteps:\n  - op: weekday\n    serial: 0\n    expect: \"Thursday\"\n",
			wantErr: "description is required",
		},
		{
			name:    "no_steps",
			doc:     "name: n\ndescription: d\n",
			wantErr: "steps list is required",
		},
		{
			name:    "missing_op",
			doc:     "name: n\ndescription: d\nsteps:\n  - serial: 0\n    expect: \"x\"\n",
			wantErr: "steps[0]: op is required",
		},
		{
			name:    "unknown_op",
			doc:     "name: n\ndescription: d\nsteps:\n  - op: melt\n    expect: \"x\"\n",
			wantErr: "unknown op",
		},
		{
			name:    "missing_expect",
			doc:     "name: n\ndescription: d\nsteps:\n  - op: weekday\n    serial: 0\n",
			wantErr: "steps[0]: expect is required",
		},
		{
			name:    "weekday_without_serial",
			doc:     "name: n\ndescription: d\nsteps:\n  - op: weekday\n    expect: \"Thursday\"\n",
			wantErr: "serial is required",
		},
		{
			name:    "date_op_without_date",
			doc:     "name: n\ndescription: d\nsteps:\n  - op: add_months\n    months: 1\n    expect: \"x\"\n",
			wantErr: "date is required",
		},
		{
			name:    "clock_op_without_unix",
			doc:     "name: n\ndescription: d\nsteps:\n  - op: utc_to_tai\n    expect: \"x\"\n",
			wantErr: "unix is required",
		},
		{
			name:    "round_without_units",
			doc:     "name: n\ndescription: d\nsteps:\n  - op: round\n    ticks: 1\n    expect: \"x\"\n",
			wantErr: "from and to units are required",
		},
		{
			name:    "round_unknown_unit",
			doc:     "name: n\ndescription: d\nsteps:\n  - op: round\n    ticks: 1\n    from: fortnight\n    to: s\n    expect: \"x\"\n",
			wantErr: "unknown unit",
		},
		{
			name:    "round_unknown_mode",
			doc:     "name: n\ndescription: d\nsteps:\n  - op: round\n    ticks: 1\n    from: min\n    to: s\n    mode: nearest\n    expect: \"x\"\n",
			wantErr: "unknown rounding mode",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenarioFixedLeapTable(t *testing.T) {
	path := writeScenario(t, `
name: fixed
description: "pinned offset"
leap_table:
  fixed_seconds: 37
steps:
  - op: utc_to_tai
    unix: 0
    expect: "37"
`)
	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	require.NotNil(t, scenario.LeapTable)
	assert.Equal(t, int64(37), scenario.LeapTable.FixedSeconds)
}

func writeScenario(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

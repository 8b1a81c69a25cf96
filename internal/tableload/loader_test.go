package tableload

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronotope/chrono/internal/tzstore"
)

func TestLoadDirValidTable(t *testing.T) {
	result, errs := LoadDir(filepath.Join("testdata", "valid"), LoadModeFailFast)
	require.Empty(t, errs)
	require.NotNil(t, result)
	require.NotNil(t, result.Table)

	assert.Equal(t, 1, result.FileCount)
	assert.Equal(t, "iers-bulletin-c-2017", result.Table.Source)

	require.Len(t, result.Table.Leaps, 5)
	assert.Equal(t, tzstore.LeapEntry{EffectiveFrom: 63072000, TAIMinusUTC: 10}, result.Table.Leaps[0])
	assert.Equal(t, tzstore.LeapEntry{EffectiveFrom: 1483228800, TAIMinusUTC: 37}, result.Table.Leaps[4])

	require.Contains(t, result.Table.Zones, "Europe/Berlin")
	require.Contains(t, result.Table.Zones, "America/New_York")
	berlin := result.Table.Zones["Europe/Berlin"]
	require.Len(t, berlin, 2)
	assert.Equal(t, "Europe/Berlin", berlin[0].Zone)
	assert.Equal(t, int64(3600), berlin[0].UTCOffset)
	assert.Equal(t, int64(7200), berlin[1].UTCOffset)
}

func TestLoadDirNonExistent(t *testing.T) {
	_, errs := LoadDir("/nonexistent/directory/path", LoadModeFailFast)
	require.Len(t, errs, 1)

	var loadErr *LoadError
	require.ErrorAs(t, errs[0], &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadDirEmpty(t *testing.T) {
	_, errs := LoadDir(t.TempDir(), LoadModeFailFast)
	require.Len(t, errs, 1)

	var loadErr *LoadError
	require.ErrorAs(t, errs[0], &loadErr)
	assert.Equal(t, ErrCodeNoFiles, loadErr.Code)
}

func TestLoadBytesValid(t *testing.T) {
	doc := `table: {
	version: 1
	source:  "test"
	leaps: [
		{effective_from: 63072000, tai_minus_utc: 10},
	]
	zones: {}
}`
	result, errs := LoadBytes("table.cue", []byte(doc), LoadModeFailFast)
	require.Empty(t, errs)
	require.NotNil(t, result.Table)
	assert.Equal(t, "test", result.Table.Source)
	assert.Len(t, result.Table.Leaps, 1)
}

func TestLoadBytesSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "wrong_version",
			doc:  `table: {version: 2, source: "x", leaps: [], zones: {}}`,
		},
		{
			name: "empty_source",
			doc:  `table: {version: 1, source: "", leaps: [], zones: {}}`,
		},
		{
			name: "negative_tai_minus_utc",
			doc:  `table: {version: 1, source: "x", leaps: [{effective_from: 0, tai_minus_utc: -1}], zones: {}}`,
		},
		{
			name: "offset_out_of_range",
			doc:  `table: {version: 1, source: "x", leaps: [], zones: {"A/B": [{effective_from: 0, offset_seconds: 90000}]}}`,
		},
		{
			name: "missing_field",
			doc:  `table: {version: 1, source: "x", leaps: [{effective_from: 0}], zones: {}}`,
		},
		{
			name: "non_concrete",
			doc:  `table: {version: 1, source: string, leaps: [], zones: {}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := LoadBytes("table.cue", []byte(tt.doc), LoadModeFailFast)
			require.NotEmpty(t, errs)

			var loadErr *LoadError
			require.ErrorAs(t, errs[0], &loadErr)
			assert.Equal(t, ErrCodeSchema, loadErr.Code)
		})
	}
}

func TestLoadBytesLeapOrder(t *testing.T) {
	doc := `table: {
	version: 1
	source:  "test"
	leaps: [
		{effective_from: 78796800, tai_minus_utc: 11},
		{effective_from: 63072000, tai_minus_utc: 10},
	]
	zones: {}
}`
	_, errs := LoadBytes("table.cue", []byte(doc), LoadModeCollectAll)
	require.NotEmpty(t, errs)

	codes := errorCodes(t, errs)
	assert.Contains(t, codes, ErrCodeLeapOrder)
	assert.Contains(t, codes, ErrCodeLeapRegress)
}

func TestLoadBytesLeapOrderFailFast(t *testing.T) {
	doc := `table: {
	version: 1
	source:  "test"
	leaps: [
		{effective_from: 100, tai_minus_utc: 10},
		{effective_from: 100, tai_minus_utc: 10},
		{effective_from: 50, tai_minus_utc: 9},
	]
	zones: {}
}`
	result, errs := LoadBytes("table.cue", []byte(doc), LoadModeFailFast)
	require.Len(t, errs, 1)
	require.NotNil(t, result.Table, "decoded table stays available alongside validation errors")
}

func TestLoadBytesZoneStepOrder(t *testing.T) {
	doc := `table: {
	version: 1
	source:  "test"
	leaps: []
	zones: {
		"Europe/Berlin": [
			{effective_from: 200, offset_seconds: 3600},
			{effective_from: 100, offset_seconds: 7200},
		]
	}
}`
	_, errs := LoadBytes("table.cue", []byte(doc), LoadModeCollectAll)
	require.NotEmpty(t, errs)
	assert.Contains(t, errorCodes(t, errs), ErrCodeZoneStepOrder)
}

func TestLoadBytesZoneNameNormalized(t *testing.T) {
	// U+0065 U+0301 (e + combining acute) must decode as the
	// precomposed U+00E9 form.
	doc := `table: {
	version: 1
	source:  "test"
	leaps: []
	zones: {
		"Zone/Montréal": [
			{effective_from: 0, offset_seconds: -18000},
		]
	}
}`
	result, errs := LoadBytes("table.cue", []byte(doc), LoadModeFailFast)
	require.Empty(t, errs)
	require.Contains(t, result.Table.Zones, "Zone/Montréal")
	assert.Equal(t, "Zone/Montréal", result.Table.Zones["Zone/Montréal"][0].Zone)
}

func TestTableRevision(t *testing.T) {
	table := &Table{
		Source: "test",
		Leaps: []tzstore.LeapEntry{
			{EffectiveFrom: 63072000, TAIMinusUTC: 10},
		},
		Zones: map[string][]tzstore.ZoneOffset{
			"B/B": {{Zone: "B/B", EffectiveFrom: 10, UTCOffset: 3600}},
			"A/A": {{Zone: "A/A", EffectiveFrom: 20, UTCOffset: -3600}},
		},
	}

	rev := table.Revision()
	assert.Equal(t, "test", rev.Source)
	require.Len(t, rev.LeapSeconds, 1)
	require.Len(t, rev.ZoneOffsets, 2)
	// Zones emit in sorted name order so revisions are deterministic.
	assert.Equal(t, "A/A", rev.ZoneOffsets[0].Zone)
	assert.Equal(t, "B/B", rev.ZoneOffsets[1].Zone)
}

func TestLoadErrorFormatting(t *testing.T) {
	err := &LoadError{Code: ErrCodeSchema, Message: "bad table"}
	assert.Equal(t, "T006: bad table", err.Error())
}

func errorCodes(t *testing.T, errs []error) []string {
	t.Helper()
	var codes []string
	for _, err := range errs {
		var loadErr *LoadError
		require.ErrorAs(t, err, &loadErr)
		codes = append(codes, loadErr.Code)
	}
	return codes
}

package tableload

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"
	"golang.org/x/text/unicode/norm"

	"github.com/chronotope/chrono/internal/tzstore"
)

//go:embed schema.cue
var schemaSource string

// LoadMode controls how errors are handled during table loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// LoadResult contains the results of loading a table directory.
type LoadResult struct {
	Table     *Table
	CUEValue  cue.Value // The unified CUE value for additional processing
	FileCount int       // Number of CUE files found
}

// Table is a decoded and validated clock-table document.
type Table struct {
	Source string
	Leaps  []tzstore.LeapEntry
	Zones  map[string][]tzstore.ZoneOffset
}

// LoadError represents an error that occurred during table loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants - unified across all table loading paths.
const (
	ErrCodeGeneric      = "T001" // Generic/unknown error
	ErrCodeScanError    = "T002" // Directory scan error
	ErrCodeNoFiles      = "T003" // No CUE files found
	ErrCodeLoadFailed   = "T004" // CUE load failed
	ErrCodeNotFound     = "T005" // Path not found
	ErrCodeSchema       = "T006" // Document does not satisfy the table schema
	ErrCodeDecodeFailed = "T007" // CUE decode failed

	// Semantic validation errors
	ErrCodeLeapOrder     = "T101" // Leap steps not strictly increasing in time
	ErrCodeLeapRegress   = "T102" // TAI-UTC decreased between steps
	ErrCodeZoneStepOrder = "T111" // Zone steps not strictly increasing in time
	ErrCodeZoneCollision = "T112" // Two zone names normalize to the same name
)

// LoadDir loads and validates all CUE files in dir as one clock-table
// document. If mode is LoadModeFailFast, returns on first error.
// If mode is LoadModeCollectAll, collects all errors.
func LoadDir(dir string, mode LoadMode) (*LoadResult, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("table directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing table directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	doc := ctx.BuildInstance(inst)
	if err := doc.Err(); err != nil {
		return nil, []error{convertCUEError(err, ErrCodeLoadFailed)}
	}

	result, errs := check(ctx, doc, mode)
	if result != nil {
		result.FileCount = len(cueFiles)
	}
	return result, errs
}

// LoadBytes loads and validates a single in-memory CUE document.
func LoadBytes(filename string, src []byte, mode LoadMode) (*LoadResult, []error) {
	ctx := cuecontext.New()
	doc := ctx.CompileBytes(src, cue.Filename(filename))
	if err := doc.Err(); err != nil {
		return nil, []error{convertCUEError(err, ErrCodeLoadFailed)}
	}
	result, errs := check(ctx, doc, mode)
	if result != nil {
		result.FileCount = 1
	}
	return result, errs
}

// check unifies the document with the embedded schema, validates it,
// and decodes the table.
func check(ctx *cue.Context, doc cue.Value, mode LoadMode) (*LoadResult, []error) {
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, []error{convertCUEError(err, ErrCodeGeneric)}
	}

	unified := doc.Unify(schema)
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return nil, []error{convertCUEError(err, ErrCodeSchema)}
	}

	result := &LoadResult{CUEValue: unified}

	tableVal := unified.LookupPath(cue.ParsePath("table"))
	if !tableVal.Exists() {
		return result, []error{&LoadError{Code: ErrCodeSchema, Message: "document has no table field"}}
	}

	table, decodeErr := decodeTable(tableVal)
	if decodeErr != nil {
		return result, []error{decodeErr}
	}
	result.Table = table

	var errs []error
	for _, verr := range validateTable(table, tableVal.Pos()) {
		errs = append(errs, verr)
		if mode == LoadModeFailFast {
			return result, errs
		}
	}
	return result, errs
}

// decodeTable pulls the concrete table out of the unified value. Zone
// names are NFC-normalized here so every consumer sees one canonical
// spelling.
func decodeTable(v cue.Value) (*Table, *LoadError) {
	var raw struct {
		Source string `json:"source"`
		Leaps  []struct {
			EffectiveFrom int64 `json:"effective_from"`
			TAIMinusUTC   int64 `json:"tai_minus_utc"`
		} `json:"leaps"`
		Zones map[string][]struct {
			EffectiveFrom int64 `json:"effective_from"`
			OffsetSeconds int64 `json:"offset_seconds"`
		} `json:"zones"`
	}
	if err := v.Decode(&raw); err != nil {
		return nil, convertCUEError(err, ErrCodeDecodeFailed)
	}

	table := &Table{
		Source: raw.Source,
		Zones:  make(map[string][]tzstore.ZoneOffset, len(raw.Zones)),
	}
	for _, l := range raw.Leaps {
		table.Leaps = append(table.Leaps, tzstore.LeapEntry{
			EffectiveFrom: l.EffectiveFrom,
			TAIMinusUTC:   l.TAIMinusUTC,
		})
	}
	for name, steps := range raw.Zones {
		canonical := norm.NFC.String(name)
		if _, ok := table.Zones[canonical]; ok {
			return nil, &LoadError{
				Code:    ErrCodeZoneCollision,
				Message: fmt.Sprintf("zone %q appears twice after normalization", canonical),
				Pos:     v.Pos(),
			}
		}
		var offsets []tzstore.ZoneOffset
		for _, s := range steps {
			offsets = append(offsets, tzstore.ZoneOffset{
				Zone:          canonical,
				EffectiveFrom: s.EffectiveFrom,
				UTCOffset:     s.OffsetSeconds,
			})
		}
		table.Zones[canonical] = offsets
	}
	return table, nil
}

// Revision converts a loaded table to the tzstore write shape.
func (t *Table) Revision() tzstore.Revision {
	rev := tzstore.Revision{
		Source:      t.Source,
		LeapSeconds: append([]tzstore.LeapEntry(nil), t.Leaps...),
	}
	names := make([]string, 0, len(t.Zones))
	for name := range t.Zones {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rev.ZoneOffsets = append(rev.ZoneOffsets, t.Zones[name]...)
	}
	return rev
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// convertCUEError extracts position info from CUE errors.
func convertCUEError(err error, code string) *LoadError {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: code, Message: err.Error()}
	}
	first := errs[0]
	positions := cueerrors.Positions(first)
	if len(positions) > 0 {
		return &LoadError{Code: code, Message: first.Error(), Pos: positions[0]}
	}
	return &LoadError{Code: code, Message: first.Error()}
}

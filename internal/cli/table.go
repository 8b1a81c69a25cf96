package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronotope/chrono/internal/tableload"
	"github.com/chronotope/chrono/internal/tzstore"
)

// TableOptions holds flags for the table load command.
type TableOptions struct {
	*RootOptions
	Database string
}

// TableValidationResult holds table validation results.
type TableValidationResult struct {
	Valid  bool         `json:"valid"`
	Files  int          `json:"files"`
	Errors []TableError `json:"errors,omitempty"`
}

// TableError is one validation error in JSON output.
type TableError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TableLoadResult holds the outcome of loading a table into a store.
type TableLoadResult struct {
	Revision string `json:"revision"`
	Source   string `json:"source"`
	Leaps    int    `json:"leaps"`
	Zones    int    `json:"zones"`
}

// NewTableCommand creates the table command group.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Validate and load clock-table documents",
	}

	cmd.AddCommand(newTableValidateCommand(rootOpts))
	cmd.AddCommand(newTableLoadCommand(rootOpts))

	return cmd
}

func newTableValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <table-dir>",
		Short: "Validate clock-table documents without loading them",
		Long: `Validate CUE clock-table documents against the table schema.

Performs syntax checking, schema validation, and semantic checks
(monotonic leap steps, ordered zone offsets) without touching any
database.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTableValidate(rootOpts, args[0], cmd)
		},
	}
}

func newTableLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TableOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <table-dir>",
		Short: "Validate a clock table and save it as a store revision",
		Long: `Validate CUE clock-table documents and, if they pass, save the
table as a new revision in a SQLite store (creating the database if
it doesn't exist). Lookups always read the newest revision, so a load
atomically replaces the effective table.

Example:
  chrono table load --db ./chrono.db ./tables`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTableLoad(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runTableValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	result, errs := tableload.LoadDir(dir, tableload.LoadModeCollectAll)
	if result == nil {
		loadErr := asLoadError(errs[0])
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return NewExitError(ExitCommandError, loadErr.Error())
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", result.FileCount, dir)

	if len(errs) > 0 {
		return outputTableErrors(formatter, result.FileCount, errs)
	}

	if formatter.Format == "json" {
		return formatter.Success(TableValidationResult{Valid: true, Files: result.FileCount})
	}
	fmt.Fprintln(formatter.Writer, "✓ Table valid")
	return nil
}

func runTableLoad(opts *TableOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	logger := slog.New(handler)

	logger.Info("validating table", "dir", dir)
	loaded, errs := tableload.LoadDir(dir, tableload.LoadModeFailFast)
	if loaded == nil || len(errs) > 0 {
		loadErr := asLoadError(errs[0])
		_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
		return NewExitError(ExitFailure, loadErr.Error())
	}
	table := loaded.Table
	logger.Info("table validated", "leaps", len(table.Leaps), "zones", len(table.Zones))

	logger.Info("opening database", "path", opts.Database)
	store, err := tzstore.Open(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening store", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	id, err := store.SaveRevision(cmd.Context(), table.Revision())
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "saving revision", err)
	}
	logger.Info("revision saved", "revision", id, "source", table.Source)

	result := TableLoadResult{
		Revision: id,
		Source:   table.Source,
		Leaps:    len(table.Leaps),
		Zones:    len(table.Zones),
	}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "✓ Loaded revision %s (%d leap steps, %d zones)\n", result.Revision, result.Leaps, result.Zones)
	return nil
}

// outputTableErrors outputs validation errors and fails the command.
func outputTableErrors(formatter *OutputFormatter, files int, errs []error) error {
	if formatter.Format == "json" {
		result := TableValidationResult{Valid: false, Files: files}
		for _, err := range errs {
			loadErr := asLoadError(err)
			result.Errors = append(result.Errors, TableError{Code: loadErr.Code, Message: loadErr.Message})
		}
		first := asLoadError(errs[0])
		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error:  &CLIError{Code: first.Code, Message: first.Message},
		}
		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, err := range errs {
		loadErr := asLoadError(err)
		fmt.Fprintf(formatter.Writer, "  %s: %s\n", loadErr.Code, loadErr.Message)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}

// asLoadError normalizes any error into a tableload.LoadError.
func asLoadError(err error) *tableload.LoadError {
	var loadErr *tableload.LoadError
	if errors.As(err, &loadErr) {
		return loadErr
	}
	return &tableload.LoadError{Code: tableload.ErrCodeGeneric, Message: err.Error()}
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chronotope/chrono/civil"
	"github.com/chronotope/chrono/clock"
	"github.com/chronotope/chrono/temporal"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	To string
}

// DateResult is the payload for date and serial conversions.
type DateResult struct {
	Date    string `json:"date"`
	Serial  int64  `json:"serial"`
	Weekday string `json:"weekday"`
}

// UnixResult is the payload for timescale conversions.
type UnixResult struct {
	Scale string `json:"scale"`
	Value int64  `json:"value"`
}

// NewConvertCommand creates the convert command group.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between calendar, serial, and timescale representations",
	}

	cmd.AddCommand(newConvertDateCommand(rootOpts))
	cmd.AddCommand(newConvertSerialCommand(rootOpts))
	cmd.AddCommand(newConvertUnixCommand(rootOpts))

	return cmd
}

func newConvertDateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "date <yyyy-mm-dd>",
		Short: "Convert a calendar date to its day serial",
		Long: `Convert a proleptic Gregorian calendar date to its day serial,
counting days from 1970-01-01 (serial 0). Dates before the epoch
produce negative serials.

Example:
  chrono convert date 2000-02-29`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvertDate(rootOpts, args[0], cmd)
		},
	}
}

func newConvertSerialCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "serial <days>",
		Short:         "Convert a day serial to its calendar date",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvertSerial(rootOpts, args[0], cmd)
		},
	}
}

func newConvertUnixCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "unix <seconds>",
		Short: "Convert a UTC unix instant to another timescale",
		Long: `Convert a UTC instant, given as unix seconds, to another timescale
using the shipped leap-second history.

Supported targets: tai, gps, filetime.

Example:
  chrono convert unix 1483228800 --to tai`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvertUnix(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.To, "to", "tai", "target timescale (tai|gps|filetime)")

	return cmd
}

func runConvertDate(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	date, err := parseDate(arg)
	if err != nil {
		_ = formatter.Error(ErrCodeParse, err.Error(), nil)
		return WrapExitError(ExitCommandError, "parsing date", err)
	}
	if !date.Valid() {
		msg := fmt.Sprintf("not a calendar date: %s", date)
		_ = formatter.Error(ErrCodeConvert, msg, nil)
		return NewExitError(ExitFailure, msg)
	}

	return outputDate(formatter, date)
}

func runConvertSerial(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	serial, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		_ = formatter.Error(ErrCodeParse, fmt.Sprintf("not a day serial: %q", arg), nil)
		return WrapExitError(ExitCommandError, "parsing serial", err)
	}

	return outputDate(formatter, civil.CivilFromDays(serial))
}

func runConvertUnix(opts *ConvertOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	seconds, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		_ = formatter.Error(ErrCodeParse, fmt.Sprintf("not a unix instant: %q", arg), nil)
		return WrapExitError(ExitCommandError, "parsing unix seconds", err)
	}

	utc := temporal.At[clock.UTC](temporal.Seconds(seconds))
	var value int64
	switch opts.To {
	case "tai":
		tai, convErr := clock.UTCToTAI(utc, clock.StaticLeapTable{})
		if convErr != nil {
			_ = formatter.Error(ErrCodeConvert, convErr.Error(), nil)
			return WrapExitError(ExitFailure, "converting to TAI", convErr)
		}
		value = tai.SinceEpoch().Count()
	case "gps":
		gps, convErr := clock.UTCToGPS(utc, clock.StaticLeapTable{})
		if convErr != nil {
			_ = formatter.Error(ErrCodeConvert, convErr.Error(), nil)
			return WrapExitError(ExitFailure, "converting to GPS", convErr)
		}
		value = gps.SinceEpoch().Count()
	case "filetime":
		ft, convErr := clock.UTCToFileTime(utc)
		if convErr != nil {
			_ = formatter.Error(ErrCodeConvert, convErr.Error(), nil)
			return WrapExitError(ExitFailure, "converting to FILETIME", convErr)
		}
		value = ft.SinceEpoch().Count()
	default:
		msg := fmt.Sprintf("unknown timescale %q: must be tai, gps, or filetime", opts.To)
		_ = formatter.Error(ErrCodeParse, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	result := UnixResult{Scale: opts.To, Value: value}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "%s: %d\n", result.Scale, result.Value)
	return nil
}

func outputDate(formatter *OutputFormatter, date civil.Date) error {
	result := DateResult{
		Date:    date.String(),
		Serial:  civil.DaysFromCivil(date.Year, date.Month, date.Day),
		Weekday: date.Weekday().String(),
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	fmt.Fprintf(formatter.Writer, "date:    %s\n", result.Date)
	fmt.Fprintf(formatter.Writer, "serial:  %d\n", result.Serial)
	fmt.Fprintf(formatter.Writer, "weekday: %s\n", result.Weekday)
	return nil
}

// parseDate parses yyyy-mm-dd, allowing negative years.
func parseDate(s string) (civil.Date, error) {
	rest := s
	neg := false
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}
	parts := strings.Split(rest, "-")
	if len(parts) != 3 {
		return civil.Date{}, fmt.Errorf("not a date: %q (want yyyy-mm-dd)", s)
	}
	year, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return civil.Date{}, fmt.Errorf("bad year in %q", s)
	}
	if neg {
		year = -year
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return civil.Date{}, fmt.Errorf("bad month in %q", s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return civil.Date{}, fmt.Errorf("bad day in %q", s)
	}
	return civil.FromFields(year, month, day), nil
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

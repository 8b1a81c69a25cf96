package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronotope/chrono/civil"
	"github.com/chronotope/chrono/clock"
)

// NowResult holds one set of clock readings.
type NowResult struct {
	SystemNanos int64  `json:"system_nanos"`
	SteadyNanos int64  `json:"steady_nanos"`
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
}

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print current clock readings",
		Long: `Print the current system and steady clock readings along with
today's UTC calendar date.

The system reading is nanoseconds since the unix epoch; the steady
reading is nanoseconds since process start and never moves backward.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(rootOpts, cmd)
		},
	}

	return cmd
}

func runNow(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	utc := clock.UTCNow()
	date, err := civil.FromDayPoint(utc)
	if err != nil {
		_ = formatter.Error(ErrCodeConvert, err.Error(), nil)
		return WrapExitError(ExitCommandError, "deriving calendar date", err)
	}

	result := NowResult{
		SystemNanos: clock.SystemNow().SinceEpoch().Count(),
		SteadyNanos: clock.SteadyNow().SinceEpoch().Count(),
		Date:        date.String(),
		Weekday:     date.Weekday().String(),
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "system: %d ns\n", result.SystemNanos)
	fmt.Fprintf(formatter.Writer, "steady: %d ns\n", result.SteadyNanos)
	fmt.Fprintf(formatter.Writer, "date:   %s (%s)\n", result.Date, result.Weekday)
	return nil
}

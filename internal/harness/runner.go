package harness

import (
	"fmt"
	"strconv"

	"github.com/chronotope/chrono/civil"
	"github.com/chronotope/chrono/clock"
	"github.com/chronotope/chrono/internal/testutil"
	"github.com/chronotope/chrono/period"
	"github.com/chronotope/chrono/temporal"
)

// Result holds the outcome of running a scenario.
type Result struct {
	ScenarioName string
	Steps        []StepResult
	// Pass is true when every step matched its expectation.
	Pass bool
}

// StepResult is one executed step.
type StepResult struct {
	Op     string `json:"op"`
	Output string `json:"output"`
	Expect string `json:"expect"`
	Pass   bool   `json:"pass"`
}

// Run executes every step of a scenario and compares outputs against
// expectations. Steps are independent: a failing step is recorded and
// execution continues. Run itself errors only on a malformed scenario.
func Run(scenario *Scenario) (*Result, error) {
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	leaps := leapTableFor(scenario)
	result := &Result{ScenarioName: scenario.Name, Pass: true}

	for _, step := range scenario.Steps {
		output := runStep(&step, leaps)
		sr := StepResult{
			Op:     step.Op,
			Output: output,
			Expect: step.Expect,
			Pass:   output == step.Expect,
		}
		if !sr.Pass {
			result.Pass = false
		}
		result.Steps = append(result.Steps, sr)
	}

	return result, nil
}

func leapTableFor(scenario *Scenario) clock.LeapTable {
	if scenario.LeapTable != nil {
		return testutil.FixedLeapTable{Seconds: scenario.LeapTable.FixedSeconds}
	}
	return clock.StaticLeapTable{}
}

// runStep executes one conversion and formats its output. Failures
// format as "error: <text>" so scenarios can expect them.
func runStep(s *Step, leaps clock.LeapTable) string {
	switch s.Op {
	case OpDateToSerial:
		serial := civil.DaysFromCivil(s.Date.Year, s.Date.Month, s.Date.Day)
		return strconv.FormatInt(serial, 10)

	case OpSerialToDate:
		return civil.CivilFromDays(*s.Serial).String()

	case OpWeekday:
		return civil.WeekdayFromDays(*s.Serial).String()

	case OpAddDays:
		return civil.AddDays(toDate(s.Date), s.Days).String()

	case OpAddMonths:
		shifted := civil.AddMonths(toDate(s.Date), s.Months)
		if s.Clamp {
			shifted = civil.ClampToMonthEnd(shifted)
		}
		return shifted.String()

	case OpUTCToTAI:
		utc := temporal.At[clock.UTC](temporal.Seconds(*s.Unix))
		tai, err := clock.UTCToTAI(utc, leaps)
		if err != nil {
			return "error: " + err.Error()
		}
		return strconv.FormatInt(tai.SinceEpoch().Count(), 10)

	case OpTAIToUTC:
		tai := temporal.At[clock.TAI](temporal.Seconds(*s.Unix))
		utc, err := clock.TAIToUTC(tai, leaps)
		if err != nil {
			return "error: " + err.Error()
		}
		return strconv.FormatInt(utc.SinceEpoch().Count(), 10)

	case OpUTCToGPS:
		utc := temporal.At[clock.UTC](temporal.Seconds(*s.Unix))
		gps, err := clock.UTCToGPS(utc, leaps)
		if err != nil {
			return "error: " + err.Error()
		}
		return strconv.FormatInt(gps.SinceEpoch().Count(), 10)

	case OpUTCToFileTime:
		utc := temporal.At[clock.UTC](temporal.Seconds(*s.Unix))
		ft, err := clock.UTCToFileTime(utc)
		if err != nil {
			return "error: " + err.Error()
		}
		return strconv.FormatInt(ft.SinceEpoch().Count(), 10)

	case OpRound:
		return runRound(s)

	default:
		return "error: unknown op " + s.Op
	}
}

func runRound(s *Step) string {
	from, err := unitPeriod(s.From)
	if err != nil {
		return "error: " + err.Error()
	}
	to, err := unitPeriod(s.To)
	if err != nil {
		return "error: " + err.Error()
	}
	mode := s.Mode
	if mode == "" {
		mode = "half_even"
	}
	round, err := roundFunc(mode)
	if err != nil {
		return "error: " + err.Error()
	}

	out, err := round(temporal.New(s.Ticks, from), to)
	if err != nil {
		return "error: " + err.Error()
	}
	return strconv.FormatInt(out.Count(), 10)
}

func toDate(d *DateSpec) civil.Date {
	return civil.FromFields(d.Year, d.Month, d.Day)
}

// unitPeriod resolves a scenario unit name to its period.
func unitPeriod(name string) (period.Period, error) {
	switch name {
	case "ns":
		return period.Nano, nil
	case "us":
		return period.Micro, nil
	case "ms":
		return period.Milli, nil
	case "s":
		return period.Second, nil
	case "min":
		return period.Minute, nil
	case "h":
		return period.Hour, nil
	case "d":
		return period.Day, nil
	case "w":
		return period.Week, nil
	default:
		return period.Period{}, fmt.Errorf("unknown unit %q", name)
	}
}

type roundOp func(temporal.Duration[int64], period.Period) (temporal.Duration[int64], error)

// roundFunc resolves a scenario rounding mode name.
func roundFunc(mode string) (roundOp, error) {
	switch mode {
	case "trunc":
		return temporal.Cast[int64, int64], nil
	case "floor":
		return temporal.Floor[int64, int64], nil
	case "ceil":
		return temporal.Ceil[int64, int64], nil
	case "half_even":
		return temporal.Round[int64, int64], nil
	default:
		return nil, fmt.Errorf("unknown rounding mode %q", mode)
	}
}

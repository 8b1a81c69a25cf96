package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conversion conformance scenario.
// Scenarios execute a list of conversion steps and compare each output
// against its expected value.
type Scenario struct {
	// Name uniquely identifies this scenario. It doubles as the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// LeapTable selects the leap-second source for clock conversions.
	// If nil, the shipped static history is used.
	LeapTable *LeapTableSpec `yaml:"leap_table,omitempty"`

	// Steps contains the conversions to execute, in order.
	Steps []Step `yaml:"steps"`
}

// LeapTableSpec selects the leap table a scenario converts with.
type LeapTableSpec struct {
	// FixedSeconds pins TAI-UTC to one constant offset.
	FixedSeconds int64 `yaml:"fixed_seconds"`
}

// Step is a single conversion with its expected output.
// Which input fields are required depends on Op.
type Step struct {
	// Op names the conversion to perform. See the Op constants.
	Op string `yaml:"op"`

	// Date is the calendar input (date_to_serial, add_days, add_months).
	Date *DateSpec `yaml:"date,omitempty"`

	// Serial is the day-serial input (serial_to_date, weekday).
	Serial *int64 `yaml:"serial,omitempty"`

	// Unix is the unix-seconds input for clock conversions.
	Unix *int64 `yaml:"unix,omitempty"`

	// Days is the shift amount for add_days.
	Days int64 `yaml:"days,omitempty"`

	// Months is the shift amount for add_months.
	Months int64 `yaml:"months,omitempty"`

	// Clamp applies month-end clamping after add_months.
	Clamp bool `yaml:"clamp,omitempty"`

	// Ticks, From, To, and Mode describe a round step: Ticks counted
	// in unit From, re-expressed in unit To under rounding mode Mode.
	Ticks int64  `yaml:"ticks,omitempty"`
	From  string `yaml:"from,omitempty"`
	To    string `yaml:"to,omitempty"`
	Mode  string `yaml:"mode,omitempty"`

	// Expect is the expected output, formatted the way the runner
	// formats it. An expected failure is written as "error: <text>".
	Expect string `yaml:"expect"`
}

// DateSpec is a calendar date in a scenario file.
type DateSpec struct {
	Year  int64 `yaml:"year"`
	Month int   `yaml:"month"`
	Day   int   `yaml:"day"`
}

// Step operation constants.
const (
	OpDateToSerial  = "date_to_serial"
	OpSerialToDate  = "serial_to_date"
	OpWeekday       = "weekday"
	OpAddDays       = "add_days"
	OpAddMonths     = "add_months"
	OpUTCToTAI      = "utc_to_tai"
	OpTAIToUTC      = "tai_to_utc"
	OpUTCToGPS      = "utc_to_gps"
	OpUTCToFileTime = "utc_to_filetime"
	OpRound         = "round"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "step:" vs "steps:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	return nil
}

// validateStep validates a single step based on its operation.
func validateStep(index int, s *Step) error {
	if s.Op == "" {
		return fmt.Errorf("steps[%d]: op is required", index)
	}
	if s.Expect == "" {
		return fmt.Errorf("steps[%d]: expect is required", index)
	}

	switch s.Op {
	case OpDateToSerial, OpAddDays, OpAddMonths:
		if s.Date == nil {
			return fmt.Errorf("steps[%d]: date is required for %s", index, s.Op)
		}
	case OpSerialToDate, OpWeekday:
		if s.Serial == nil {
			return fmt.Errorf("steps[%d]: serial is required for %s", index, s.Op)
		}
	case OpUTCToTAI, OpTAIToUTC, OpUTCToGPS, OpUTCToFileTime:
		if s.Unix == nil {
			return fmt.Errorf("steps[%d]: unix is required for %s", index, s.Op)
		}
	case OpRound:
		if s.From == "" || s.To == "" {
			return fmt.Errorf("steps[%d]: from and to units are required for round", index)
		}
		if _, err := unitPeriod(s.From); err != nil {
			return fmt.Errorf("steps[%d]: %w", index, err)
		}
		if _, err := unitPeriod(s.To); err != nil {
			return fmt.Errorf("steps[%d]: %w", index, err)
		}
		if s.Mode != "" {
			if _, err := roundFunc(s.Mode); err != nil {
				return fmt.Errorf("steps[%d]: %w", index, err)
			}
		}
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, s.Op)
	}

	return nil
}

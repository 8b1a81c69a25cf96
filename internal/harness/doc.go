// Package harness provides conformance testing for conversion behavior.
//
// The harness loads conversion scenarios, executes their steps against
// the civil, temporal, and clock packages, and compares the outputs
// against per-step expectations and golden snapshots.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	leap_table:
//	  fixed_seconds: 37
//	steps:
//	  - op: date_to_serial
//	    date: {year: 2000, month: 2, day: 29}
//	    expect: "11016"
//	  - op: utc_to_tai
//	    unix: 1483228800
//	    expect: "1483228837"
//
// # Step Operations
//
// The following operations are supported:
//
//   - date_to_serial: Convert calendar fields to a day serial
//   - serial_to_date: Convert a day serial back to calendar fields
//   - weekday: Name the weekday of a day serial
//   - add_days: Shift a date by whole days
//   - add_months: Shift a date by calendar months, optionally clamping
//   - utc_to_tai, tai_to_utc: Leap-second aware conversions
//   - utc_to_gps: GPS time conversion
//   - utc_to_filetime: Windows FILETIME tick conversion
//   - round: Re-express a tick count in another unit under a rounding mode
//
// # Deterministic Testing
//
// Steps are pure conversions, so a scenario's outputs depend only on
// its inputs and the leap table it names. The leap_table block selects
// either a fixed TAI-UTC offset (testutil.FixedLeapTable) or the
// shipped static history, keeping golden snapshots stable across runs.
//
// # Usage
//
// Load a scenario:
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/anchors.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Execute and inspect:
//
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, step := range result.Steps {
//	    if !step.Pass {
//	        log.Printf("%s: got %s, want %s", step.Op, step.Output, step.Expect)
//	    }
//	}
package harness

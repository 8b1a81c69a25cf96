package tableload

import (
	"fmt"
	"sort"

	"cuelang.org/go/cue/token"
)

// validateTable checks the semantic rules the schema cannot express:
// leap steps strictly increasing in time with non-decreasing TAI-UTC,
// and zone steps strictly increasing in time per zone.
func validateTable(t *Table, pos token.Pos) []*LoadError {
	var errs []*LoadError

	for i := 1; i < len(t.Leaps); i++ {
		prev, cur := t.Leaps[i-1], t.Leaps[i]
		if cur.EffectiveFrom <= prev.EffectiveFrom {
			errs = append(errs, &LoadError{
				Code:    ErrCodeLeapOrder,
				Message: fmt.Sprintf("leap step %d (effective_from %d) does not follow step %d (effective_from %d)", i, cur.EffectiveFrom, i-1, prev.EffectiveFrom),
				Pos:     pos,
			})
		}
		if cur.TAIMinusUTC < prev.TAIMinusUTC {
			errs = append(errs, &LoadError{
				Code:    ErrCodeLeapRegress,
				Message: fmt.Sprintf("leap step %d decreases tai_minus_utc from %d to %d", i, prev.TAIMinusUTC, cur.TAIMinusUTC),
				Pos:     pos,
			})
		}
	}

	names := make([]string, 0, len(t.Zones))
	for name := range t.Zones {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		steps := t.Zones[name]
		for i := 1; i < len(steps); i++ {
			if steps[i].EffectiveFrom <= steps[i-1].EffectiveFrom {
				errs = append(errs, &LoadError{
					Code:    ErrCodeZoneStepOrder,
					Message: fmt.Sprintf("zone %q step %d (effective_from %d) does not follow step %d (effective_from %d)", name, i, steps[i].EffectiveFrom, i-1, steps[i-1].EffectiveFrom),
					Pos:     pos,
				})
			}
		}
	}

	return errs
}

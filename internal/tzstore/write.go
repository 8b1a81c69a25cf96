package tzstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LeapEntry is one leap-second step: from EffectiveFrom (unix seconds,
// UTC) onward, TAI-UTC equals TAIMinusUTC seconds.
type LeapEntry struct {
	EffectiveFrom int64
	TAIMinusUTC   int64
}

// ZoneOffset is one offset step of a named zone.
type ZoneOffset struct {
	Zone          string
	EffectiveFrom int64
	UTCOffset     int64
}

// Revision is one full load of both tables.
type Revision struct {
	ID          string
	Source      string
	LeapSeconds []LeapEntry
	ZoneOffsets []ZoneOffset
}

// SaveRevision writes a revision and all of its rows in one
// transaction and returns the generated revision id. The revision id
// is a UUIDv7, so ids sort by load time and "newest revision" is a
// plain MAX(id).
func (s *Store) SaveRevision(ctx context.Context, rev Revision) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("save revision: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("save revision: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO revisions (id, source, loaded_at)
		VALUES (?, ?, ?)
	`, id.String(), rev.Source, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("save revision: %w", err)
	}

	for _, e := range rev.LeapSeconds {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO leap_seconds (revision_id, effective_from, tai_minus_utc)
			VALUES (?, ?, ?)
		`, id.String(), e.EffectiveFrom, e.TAIMinusUTC)
		if err != nil {
			return "", fmt.Errorf("save leap entry at %d: %w", e.EffectiveFrom, err)
		}
	}

	for _, z := range rev.ZoneOffsets {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO zone_offsets (revision_id, zone, effective_from, utc_offset)
			VALUES (?, ?, ?, ?)
		`, id.String(), z.Zone, z.EffectiveFrom, z.UTCOffset)
		if err != nil {
			return "", fmt.Errorf("save zone offset %s at %d: %w", z.Zone, z.EffectiveFrom, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("save revision: %w", err)
	}
	return id.String(), nil
}

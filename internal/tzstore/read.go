package tzstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chronotope/chrono/clock"
	"github.com/chronotope/chrono/period"
	"github.com/chronotope/chrono/temporal"
)

// ErrNoRevision indicates that no revision has been loaded yet.
var ErrNoRevision = errors.New("tzstore: no table revision loaded")

// ErrNoEntry indicates that the newest revision has no step in effect
// at the queried instant.
var ErrNoEntry = errors.New("tzstore: no table entry for instant")

// NewestRevision returns the id of the most recently loaded revision.
func (s *Store) NewestRevision(ctx context.Context) (string, error) {
	var id sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT MAX(id) FROM revisions`).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("newest revision: %w", err)
	}
	if !id.Valid {
		return "", ErrNoRevision
	}
	return id.String, nil
}

// TAIMinusUTCAt returns TAI-UTC in effect at the given unix second,
// from the newest revision.
func (s *Store) TAIMinusUTCAt(ctx context.Context, unixSeconds int64) (int64, error) {
	rev, err := s.NewestRevision(ctx)
	if err != nil {
		return 0, err
	}
	var off int64
	err = s.db.QueryRowContext(ctx, `
		SELECT tai_minus_utc FROM leap_seconds
		WHERE revision_id = ? AND effective_from <= ?
		ORDER BY effective_from DESC
		LIMIT 1
	`, rev, unixSeconds).Scan(&off)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNoEntry
	}
	if err != nil {
		return 0, fmt.Errorf("leap lookup: %w", err)
	}
	return off, nil
}

// UTCOffsetAt returns the named zone's offset in effect at the given
// unix second, from the newest revision.
func (s *Store) UTCOffsetAt(ctx context.Context, zone string, unixSeconds int64) (int64, error) {
	rev, err := s.NewestRevision(ctx)
	if err != nil {
		return 0, err
	}
	var off int64
	err = s.db.QueryRowContext(ctx, `
		SELECT utc_offset FROM zone_offsets
		WHERE revision_id = ? AND zone = ? AND effective_from <= ?
		ORDER BY effective_from DESC
		LIMIT 1
	`, rev, zone, unixSeconds).Scan(&off)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNoEntry
	}
	if err != nil {
		return 0, fmt.Errorf("offset lookup: %w", err)
	}
	return off, nil
}

// LeapTable adapts the store to the clock.LeapTable collaborator.
// Lookups run against the newest revision at call time, so refreshing
// the store is visible to existing adapters.
func (s *Store) LeapTable() clock.LeapTable {
	return leapAdapter{s: s}
}

type leapAdapter struct {
	s *Store
}

func (a leapAdapter) TAIMinusUTC(utc temporal.TimePoint[clock.UTC, int64]) (temporal.Duration[int64], error) {
	secs, err := temporal.Floor[int64](utc.SinceEpoch(), period.Second)
	if err != nil {
		return temporal.Duration[int64]{}, err
	}
	off, err := a.s.TAIMinusUTCAt(context.Background(), secs.Count())
	if err != nil {
		return temporal.Duration[int64]{}, err
	}
	return temporal.Seconds(off), nil
}

// ZoneLookup adapts one named zone of the store to the
// clock.OffsetLookup collaborator.
func (s *Store) ZoneLookup(zone string) clock.OffsetLookup {
	return zoneAdapter{s: s, zone: zone}
}

type zoneAdapter struct {
	s    *Store
	zone string
}

func (a zoneAdapter) OffsetAt(at temporal.TimePoint[clock.System, int64]) (temporal.Duration[int64], error) {
	secs, err := temporal.Floor[int64](at.SinceEpoch(), period.Second)
	if err != nil {
		return temporal.Duration[int64]{}, err
	}
	off, err := a.s.UTCOffsetAt(context.Background(), a.zone, secs.Count())
	if err != nil {
		return temporal.Duration[int64]{}, err
	}
	return temporal.Seconds(off), nil
}

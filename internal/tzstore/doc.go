// Package tzstore provides SQLite-backed storage for clock-table
// revisions: leap-second history and per-zone UTC offsets.
//
// The core treats the leap table and offset lookup as opaque
// collaborators; tzstore is the durable implementation. Each load is a
// revision (UUIDv7 id, so revision ids sort by creation time) holding
// a full copy of both tables, and lookups always read the newest
// revision. Stale revisions stay in place for audit.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during a table refresh
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: revision rows own their table rows
//
// Lookups order by effective_from DESC LIMIT 1, so a query for any
// instant lands on the step in effect at that instant.
package tzstore

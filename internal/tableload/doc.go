// Package tableload loads clock-table documents: CUE files declaring
// a leap-second history and per-zone UTC offsets, validated against an
// embedded schema before anything reaches tzstore.
//
// Validation covers both shape (via the CUE schema) and semantics:
// leap steps must be strictly increasing in time and non-decreasing in
// offset, and zone offset steps must be strictly increasing per zone.
// Zone names are NFC-normalized so lookups are insensitive to the
// Unicode encoding a document author happened to use.
package tableload

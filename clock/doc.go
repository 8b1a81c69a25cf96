// Package clock declares the concrete clock tags, the process
// now-reads, and the explicit pairwise conversions between related
// clocks.
//
// There is deliberately no "pick one for me" default clock: an alias
// that silently resolves to different concrete clocks across
// environments defeats static typing. Callers choose Steady or System
// explicitly.
//
// Cross-clock conversions are independent named functions, each a
// fixed or table-driven offset pivoting on UTC. Multi-hop conversions
// are never inferred; TAI to GPS goes through UTC in two visible
// calls, so offset-table staleness and rounding never compound
// silently.
//
// Now-reads are safe under concurrent invocation from any number of
// goroutines; each call is an independent read of the underlying
// source with no ordering requirement beyond steady monotonicity.
package clock

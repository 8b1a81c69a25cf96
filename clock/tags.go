package clock

// Clock tags. Each is a zero-size type naming an epoch; time points
// carry a tag as a type parameter (temporal.TimePoint[clock.UTC, R]),
// so points of different clocks never mix without an explicit
// conversion.

// Steady is the monotonic process clock. Its epoch is process start;
// its readings never decrease and its tick rate is never adjusted
// externally. Readings are meaningless outside this process.
type Steady struct{}

func (Steady) ClockName() string { return "steady" }
func (Steady) IsSteady() bool    { return true }

// System is the realtime wall clock, measured from the Unix epoch
// (1970-01-01 00:00:00 UTC, leap seconds smeared or ignored per the
// operating system). Subject to external adjustment; not steady.
type System struct{}

func (System) ClockName() string { return "system" }
func (System) IsSteady() bool    { return false }

// UTC is Coordinated Universal Time from the Unix epoch. Distinct
// from System so that the System reading's OS-specific leap handling
// is an explicit, named conversion away.
type UTC struct{}

func (UTC) ClockName() string { return "utc" }
func (UTC) IsSteady() bool    { return false }

// TAI is International Atomic Time, ahead of UTC by the accumulated
// leap-second count (37 s since 2017-01-01).
type TAI struct{}

func (TAI) ClockName() string { return "tai" }
func (TAI) IsSteady() bool    { return false }

// GPS is GPS time: atomic time pinned 19 s behind TAI, measured here
// from the Unix epoch for uniformity.
type GPS struct{}

func (GPS) ClockName() string { return "gps" }
func (GPS) IsSteady() bool    { return false }

// FileTime is the Windows file clock: 100 ns ticks since
// 1601-01-01 00:00:00 UTC.
type FileTime struct{}

func (FileTime) ClockName() string { return "filetime" }
func (FileTime) IsSteady() bool    { return false }

// Local is not an independent clock: a Local point is a System point
// reinterpreted through a caller-supplied UTC offset (SystemToLocal).
// It stores no epoch of its own.
type Local struct{}

func (Local) ClockName() string { return "local" }
func (Local) IsSteady() bool    { return false }

package domain

import "time"

// Default clustering and fetch parameters.
const (
	DefaultTimeGapMinutes = 180
	DefaultMinClusterSize = 3
	DefaultMaxWorkingSet  = 2500
	DefaultPageSize       = 200
	DefaultMomentPadding  = 2 * time.Minute
)

// Options carries the recognized configuration of the clustering engine.
type Options struct {
	// TimeGapMinutes is the gap threshold between chronologically adjacent
	// photos beyond which a new time cluster starts.
	TimeGapMinutes int
	// MinClusterSize is the size below which a chunk is merged into its
	// same-day predecessor.
	MinClusterSize int
	// MaxWorkingSet caps the paged snapshot of recent photos per reload.
	MaxWorkingSet int
	// PageSize is the number of assets requested per fetch.
	PageSize int
	// MomentPadding widens moment range queries on both ends to compensate
	// for clock and rounding skew at moment boundaries.
	MomentPadding time.Duration
	// LibraryPath is the media library database location. Empty means the
	// adapter default.
	LibraryPath string
	// Location is the timezone used for anchor-day comparisons and date
	// formatting. Nil means time.Local.
	Location *time.Location
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		TimeGapMinutes: DefaultTimeGapMinutes,
		MinClusterSize: DefaultMinClusterSize,
		MaxWorkingSet:  DefaultMaxWorkingSet,
		PageSize:       DefaultPageSize,
		MomentPadding:  DefaultMomentPadding,
	}
}

// GapMillis returns the gap threshold in milliseconds.
func (o Options) GapMillis() int64 {
	return int64(o.TimeGapMinutes) * 60_000
}

// PaddingMillis returns the moment boundary padding in milliseconds.
func (o Options) PaddingMillis() int64 {
	return o.MomentPadding.Milliseconds()
}

// DayLocation returns the timezone for calendar-day computations.
func (o Options) DayLocation() *time.Location {
	if o.Location != nil {
		return o.Location
	}
	return time.Local
}

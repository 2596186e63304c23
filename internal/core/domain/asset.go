// Package domain contains the core types of the photo clustering engine.
package domain

// millisThreshold separates second-scale from millisecond-scale timestamps.
// Anything below it is assumed to be seconds since the epoch.
const millisThreshold int64 = 1_000_000_000_000

// Asset is a single photo as reported by an asset source.
// CreationTime carries the raw platform value, which may be expressed in
// seconds or milliseconds depending on the source. Always go through
// ToMillisMaybeSeconds (or CreationMillis) before comparing or displaying it.
type Asset struct {
	ID           string
	URI          string
	CreationTime int64
}

// CreationMillis returns the asset's creation time normalized to milliseconds.
func (a Asset) CreationMillis() int64 {
	return ToMillisMaybeSeconds(a.CreationTime)
}

// ToMillisMaybeSeconds normalizes an ambiguous-unit timestamp to milliseconds.
// Values below 10^12 are second-scale and are multiplied out; anything at or
// above that is already milliseconds and is returned unchanged.
func ToMillisMaybeSeconds(ts int64) int64 {
	if ts < millisThreshold {
		return ts * 1000
	}
	return ts
}

// AssetPage is one page of a paged asset listing.
// TotalMatched is the total number of assets matching the query across all
// pages, not the size of this page.
type AssetPage struct {
	Assets       []Asset
	NextCursor   string
	HasMore      bool
	TotalMatched int
}

// CoarseGroup is a platform-supplied grouping of photos by time and place
// (an iOS "moment"). Its reported count may exceed what the current
// permission grant can actually reach and must never be surfaced directly.
type CoarseGroup struct {
	ID            string
	StartTime     int64
	EndTime       int64
	LocationNames []string
	ReportedCount int
}

// SourceCapabilities describes what an asset source can do beyond plain
// paged enumeration. Strategy selection for moment reconciliation keys off
// these flags.
type SourceCapabilities struct {
	CoarseGroups bool
	RangeQueries bool
}

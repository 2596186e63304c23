package cluster

import "time"

const (
	dateLayout  = "Jan 2, 2006"
	clockLayout = "15:04"
)

// DateRangeTitle formats a millisecond interval as a single date when both
// ends fall on the same calendar day, or as an en-dash date range otherwise.
// Moment reconciliation uses the same formatting for its date titles.
func DateRangeTitle(startMs, endMs int64, loc *time.Location) string {
	start := time.UnixMilli(startMs).In(loc)
	end := time.UnixMilli(endMs).In(loc)

	if sameDay(start, end) {
		return start.Format(dateLayout)
	}
	return start.Format(dateLayout) + " – " + end.Format(dateLayout)
}

// clockRange formats the oldest–newest time-of-day span of a cluster.
func clockRange(startMs, endMs int64, loc *time.Location) string {
	start := time.UnixMilli(startMs).In(loc)
	end := time.UnixMilli(endMs).In(loc)
	return start.Format(clockLayout) + " – " + end.Format(clockLayout)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

package history

import (
	"strconv"
	"strings"
)

// LowAccuracyUnits is the number of units FormatConcise prints at most.
const LowAccuracyUnits = 3

type durationUnit struct {
	seconds int64
	suffix  string
}

// A year is 365.2425 days and a month a twelfth of that, matching calendar averages.
var durationUnits = []durationUnit{
	{31556952, "y"},
	{2629746, "mo"},
	{604800, "w"},
	{86400, "d"},
	{3600, "h"},
	{60, "m"},
	{1, "s"},
}

// FormatConcise renders a duration in seconds using short unit suffixes,
// largest unit first, e.g. "3d 4h 12m". At most LowAccuracyUnits non-zero
// units are printed; the rest are dropped. Zero and negative durations render as "0s".
func FormatConcise(seconds int64) string {
	if seconds <= 0 {
		return "0s"
	}

	parts := make([]string, 0, LowAccuracyUnits)
	remaining := seconds
	for _, u := range durationUnits {
		if len(parts) == LowAccuracyUnits {
			break
		}
		n := remaining / u.seconds
		if n == 0 {
			continue
		}
		remaining -= n * u.seconds
		parts = append(parts, strconv.FormatInt(n, 10)+u.suffix)
	}
	return strings.Join(parts, " ")
}

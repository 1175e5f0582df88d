package printer

import (
	"fmt"
	"time"

	"github.com/slok/tasker/internal/clock"
)

var agoUnits = []struct {
	size time.Duration
	name string
}{
	{size: 24 * time.Hour, name: "day"},
	{size: time.Hour, name: "hour"},
	{size: time.Minute, name: "minute"},
	{size: time.Second, name: "second"},
}

// TimeAgo returns a human-readable relative time string in UTC, using the
// biggest unit that fits. E.g: "5 seconds ago (UTC)", "3 hours ago (UTC)".
func TimeAgo(now, ts clock.Timestamp) string {
	if ts.IsZero() || now.IsZero() {
		return "unknown"
	}

	diff := now.Time().Sub(ts.Time())
	if diff < 0 {
		return "in the future (UTC)"
	}

	unit := agoUnits[len(agoUnits)-1]
	for _, u := range agoUnits {
		if diff >= u.size {
			unit = u
			break
		}
	}

	n := int(diff / unit.size)
	if n == 1 {
		return fmt.Sprintf("1 %s ago (UTC)", unit.name)
	}
	return fmt.Sprintf("%d %ss ago (UTC)", n, unit.name)
}

// FormatTimestamp returns a formatted timestamp string in UTC.
// Format: "2006-01-02 15:04:05 UTC".
func FormatTimestamp(ts clock.Timestamp) string {
	if ts.IsZero() {
		return "unknown"
	}
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d UTC", ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second)
}

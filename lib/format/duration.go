package format

import (
	"fmt"
	"time"
)

var units = []struct {
	limit  time.Duration
	unit   time.Duration
	suffix string
}{
	{time.Millisecond, time.Microsecond, "µs"},
	{time.Second, time.Millisecond, "ms"},
	{time.Minute, time.Second, "s"},
}

func formatDuration(duration time.Duration) string {
	if duration < time.Microsecond {
		return fmt.Sprintf("%dns", duration.Nanoseconds())
	}
	for _, u := range units {
		if duration < u.limit {
			return fmt.Sprintf("%.3g%s", float64(duration)/float64(u.unit),
				u.suffix)
		}
	}
	return (duration - duration%time.Second).String()
}

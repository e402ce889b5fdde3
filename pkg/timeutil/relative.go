// Package timeutil renders elapsed time as coarse human-readable buckets.
package timeutil

import (
	"fmt"
	"time"
)

// Fixed-size approximations, matching the display contract of earlier
// releases rather than calendar arithmetic.
const (
	yearSeconds   = 31536000
	monthSeconds  = 2592000
	daySeconds    = 86400
	hourSeconds   = 3600
	minuteSeconds = 60
)

// Relative renders how long ago then was, relative to now. The zero time
// renders a distinct "no data" value; anything under a minute is "Just now".
func Relative(then time.Time, now time.Time) string {
	if then.IsZero() {
		return "No data yet"
	}
	seconds := int64(now.Sub(then) / time.Second)

	if interval := seconds / yearSeconds; interval >= 1 {
		return plural(interval, "year")
	}
	if interval := seconds / monthSeconds; interval >= 1 {
		return plural(interval, "month")
	}
	if interval := seconds / daySeconds; interval >= 1 {
		return plural(interval, "day")
	}
	if interval := seconds / hourSeconds; interval >= 1 {
		return plural(interval, "hour")
	}
	if interval := seconds / minuteSeconds; interval >= 1 {
		return plural(interval, "min")
	}
	return "Just now"
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

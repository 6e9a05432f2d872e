package domain

import (
	"fmt"
	"time"
)

// TimeSince humanizes the interval between t and now as the largest whole
// unit, e.g. "3 days" or "1 hour". Intervals under a minute report
// "0 minutes".
func TimeSince(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = 0
	}

	units := []struct {
		d    time.Duration
		name string
	}{
		{365 * 24 * time.Hour, "year"},
		{30 * 24 * time.Hour, "month"},
		{7 * 24 * time.Hour, "week"},
		{24 * time.Hour, "day"},
		{time.Hour, "hour"},
		{time.Minute, "minute"},
	}

	for _, u := range units {
		if n := int64(d / u.d); n >= 1 {
			if n == 1 {
				return fmt.Sprintf("1 %s", u.name)
			}
			return fmt.Sprintf("%d %ss", n, u.name)
		}
	}
	return "0 minutes"
}

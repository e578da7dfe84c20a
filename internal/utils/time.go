package utils

import "time"

func DurationUntilNextMidnight(now time.Time) time.Duration {
	year, month, day := now.Date()
	nextMidnight := time.Date(year, month, day+1, 0, 0, 0, 0, now.Location())
	return nextMidnight.Sub(now)
}

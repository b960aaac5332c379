package quiz

import "time"

// Remaining reports how much of the time limit is left at the given
// instant, clamped to zero. It is a pure function of its inputs.
func Remaining(start time.Time, limit time.Duration, now time.Time) time.Duration {
	remaining := limit - now.Sub(start)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether the time limit has been reached. Expiry is only
// observed when the caller checks it, so it is detected within one poll
// interval rather than exactly at the deadline.
func Expired(start time.Time, limit time.Duration, now time.Time) bool {
	return Remaining(start, limit, now) == 0
}

package moderation

import "time"

// EscalationTimeout returns the automatic timeout a user earns at the given
// warning count. The policy saturates: the third warning costs 6 hours,
// everything from the fourth on costs 7 days.
func EscalationTimeout(count int) (time.Duration, bool) {
	switch {
	case count < 3:
		return 0, false
	case count == 3:
		return 6 * time.Hour, true
	default:
		return 7 * 24 * time.Hour, true
	}
}

// Package moderation implements the warning and mute bookkeeping, the
// escalation policy and the shared action handlers behind every command
// surface of the bot.
package moderation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidDuration is returned for any input that is not <digits><s|m|h|d>.
var ErrInvalidDuration = errors.New("invalid duration")

var durationPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// ParseDuration converts a shorthand like "10m" or "2h" into seconds.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseDuration(input string) (int, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	m := durationPattern.FindStringSubmatch(input)
	if m == nil {
		return 0, ErrInvalidDuration
	}

	value, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, ErrInvalidDuration
	}

	switch m[2] {
	case "s":
		return value, nil
	case "m":
		return value * 60, nil
	case "h":
		return value * 3600, nil
	case "d":
		return value * 86400, nil
	}
	return 0, ErrInvalidDuration
}

// FormatDuration renders seconds back into the largest whole unit, flooring:
// 59 -> "59s", 90 -> "1m", 7200 -> "2h".
func FormatDuration(seconds int) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh", seconds/3600)
	default:
		return fmt.Sprintf("%dd", seconds/86400)
	}
}

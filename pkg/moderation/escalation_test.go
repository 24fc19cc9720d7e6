package moderation

import (
	"testing"
	"time"
)

func TestEscalationTimeout(t *testing.T) {
	cases := []struct {
		count   int
		want    time.Duration
		applies bool
	}{
		{0, 0, false},
		{1, 0, false},
		{2, 0, false},
		{3, 6 * time.Hour, true},
		{4, 7 * 24 * time.Hour, true},
		{10, 7 * 24 * time.Hour, true},
	}
	for _, c := range cases {
		got, applies := EscalationTimeout(c.count)
		if applies != c.applies {
			t.Errorf("EscalationTimeout(%d) applies = %v, want %v", c.count, applies, c.applies)
		}
		if got != c.want {
			t.Errorf("EscalationTimeout(%d) = %v, want %v", c.count, got, c.want)
		}
	}
}

package moderation

import "testing"

func TestParseDuration(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"30s", 30},
		{"10m", 600},
		{"2h", 7200},
		{"1d", 86400},
		{" 10M ", 600},
		{"0s", 0},
	}
	for _, c := range cases {
		got, err := ParseDuration(c.input)
		if err != nil {
			t.Errorf("ParseDuration(%q) returned error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDuration(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestParseDurationRejectsBadInput(t *testing.T) {
	bad := []string{"", "10", "m10", "10x", "-5m", "1.5h", "10 m", "tenm"}
	for _, input := range bad {
		if _, err := ParseDuration(input); err == nil {
			t.Errorf("ParseDuration(%q) should have failed", input)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{30, "30s"},
		{59, "59s"},
		{60, "1m"},
		{90, "1m"},
		{600, "10m"},
		{7200, "2h"},
		{86400, "1d"},
		{172800, "2d"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.seconds); got != c.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

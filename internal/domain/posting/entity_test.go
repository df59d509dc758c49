package posting

import (
	"testing"
	"time"
)

func TestOpen_DeadlineBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		deadline time.Time
		want     bool
	}{
		{"future deadline", now.Add(time.Hour), true},
		{"deadline equal to now", now, true},
		{"past deadline", now.Add(-time.Second), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := JobPosting{ApplicationDeadline: tc.deadline}
			if got := p.Open(now); got != tc.want {
				t.Fatalf("Open() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseJobType(t *testing.T) {
	if jt, err := ParseJobType("  Internship "); err != nil || jt != JobTypeInternship {
		t.Fatalf("valid job type rejected: %v %v", jt, err)
	}
	if _, err := ParseJobType("Freelance"); err == nil {
		t.Fatal("unknown job type accepted")
	}
}

func TestParseWorkMode(t *testing.T) {
	if wm, err := ParseWorkMode("Remote"); err != nil || wm != WorkModeRemote {
		t.Fatalf("valid work mode rejected: %v %v", wm, err)
	}
	if _, err := ParseWorkMode("Offshore"); err == nil {
		t.Fatal("unknown work mode accepted")
	}
}

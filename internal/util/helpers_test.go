package util

import (
	"testing"
	"time"
)

func TestFormatMMSS(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		-5:   "00:00",
		59:   "00:59",
		61:   "01:01",
		1500: "25:00",
		3661: "61:01",
	}
	for in, want := range cases {
		if got := FormatMMSS(in); got != want {
			t.Fatalf("FormatMMSS(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestWeekDates(t *testing.T) {
	start := time.Date(2026, time.December, 29, 18, 30, 0, 0, time.UTC)
	dates := WeekDates(start, 7)
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	got := FormatDates(dates, "2006-01-02")
	if got[0] != "2026-12-29" || got[3] != "2027-01-01" || got[6] != "2027-01-04" {
		t.Fatalf("unexpected week: %v", got)
	}
	if dates[0].Hour() != 0 {
		t.Fatalf("expected dates truncated to midnight")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 5) != 0 || Clamp(9, 0, 5) != 5 || Clamp(3, 0, 5) != 3 {
		t.Fatalf("Clamp returned unexpected values")
	}
}

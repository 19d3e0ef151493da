package timeutil

import (
	"testing"
	"time"
)

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		mins int
		want string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 00m"},
		{125, "2h 05m"},
		{600, "10h 00m"},
	}

	for _, tc := range cases {
		if got := FormatMinutes(tc.mins); got != tc.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tc.mins, got, tc.want)
		}
	}
}

func TestMinsToHoursAndMins(t *testing.T) {
	hrs, mins := MinsToHoursAndMins(145)

	if hrs != 2 || mins != 25 {
		t.Errorf("MinsToHoursAndMins(145) = %d, %d, want 2, 25", hrs, mins)
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{24.4, 24},
		{24.5, 25},
		{25.0, 25},
	}

	for _, tc := range cases {
		if got := Round(tc.in); got != tc.want {
			t.Errorf("Round(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRoundToStartAndEnd(t *testing.T) {
	in := time.Date(2026, time.March, 9, 14, 33, 12, 0, time.UTC)

	start := RoundToStart(in)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
		t.Errorf("RoundToStart = %v", start)
	}

	end := RoundToEnd(in)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("RoundToEnd = %v", end)
	}

	if start.Day() != in.Day() || end.Day() != in.Day() {
		t.Error("rounding must not change the day")
	}
}

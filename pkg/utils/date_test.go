package utils

import (
	"testing"
	"time"
)

func TestParseDateAcceptsStrictFormatOnly(t *testing.T) {
	valid := []string{"2025-06-01", "2024-02-29", "1999-12-31"}
	for _, v := range valid {
		if _, err := ParseDate(v); err != nil {
			t.Errorf("ParseDate(%q) = %v, want nil", v, err)
		}
	}

	invalid := []string{
		"2024-02-30", // impossible calendar date
		"2023-02-29", // not a leap year
		"2025-13-01", // month out of range
		"2025-00-10",
		"2025-6-1", // partial
		"06-01-2025",
		"2025/06/01",
		"20250601",
		"today",
		"",
	}
	for _, v := range invalid {
		if _, err := ParseDate(v); err == nil {
			t.Errorf("ParseDate(%q) = nil error, want rejection", v)
		}
	}
}

func TestParseDateRoundTripsThroughFormat(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(d); got != "2025-06-01" {
		t.Fatalf("FormatDate = %q, want 2025-06-01", got)
	}
}

func TestDateOnlyDropsClockTime(t *testing.T) {
	in := time.Date(2025, 6, 1, 23, 59, 58, 123, time.UTC)
	got := DateOnly(in)
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateOnly = %v, want %v", got, want)
	}
}

package repository

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizeColumnCollapsesHeaderVariants(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Price", "price"},
		{"  Price Per Night ", "price_per_night"},
		{"price_per_night", "price_per_night"},
		{"STAR_RATING", "star_rating"},
		{"Hotel  Name", "hotel_name"},
	}
	for _, tc := range cases {
		if got := normalizeColumn(tc.in); got != tc.want {
			t.Errorf("normalizeColumn(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolvePriceColumnPrefersCanonicalName(t *testing.T) {
	col, err := resolvePriceColumn([]string{"hotel_id", "nightly_rate", "price", "city"})
	if err != nil {
		t.Fatalf("resolvePriceColumn: %v", err)
	}
	if col != "price" {
		t.Fatalf("col = %q, want price", col)
	}
}

func TestResolvePriceColumnAcceptsAliases(t *testing.T) {
	for _, alias := range []string{"price_per_night", "nightly_rate", "rate", "cost"} {
		col, err := resolvePriceColumn([]string{"hotel_id", alias})
		if err != nil {
			t.Fatalf("alias %q rejected: %v", alias, err)
		}
		if col != alias {
			t.Fatalf("col = %q, want %q", col, alias)
		}
	}
}

func TestResolvePriceColumnFailsFastWhenAbsent(t *testing.T) {
	_, err := resolvePriceColumn([]string{"hotel_id", "hotel_name", "city", "star_rating"})
	if err == nil {
		t.Fatal("expected an error for a table without a price column")
	}
	if !strings.Contains(err.Error(), "m_hotels") {
		t.Fatalf("error %q should name the table", err)
	}
}

func TestPickColumnReportsAllCandidates(t *testing.T) {
	_, err := pickColumn([]string{"x"}, "m_employees", "employee_id", "id")
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"employee_id", "id"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q should list candidate %q", err, want)
		}
	}
}

func TestValueCoercion(t *testing.T) {
	if got := toInt(int64(42)); got != 42 {
		t.Errorf("toInt(int64) = %d", got)
	}
	if got := toInt([]byte(" 17 ")); got != 17 {
		t.Errorf("toInt([]byte) = %d", got)
	}
	if got := toInt(nil); got != 0 {
		t.Errorf("toInt(nil) = %d", got)
	}
	if got := toString([]byte(" Paris ")); got != "Paris" {
		t.Errorf("toString([]byte) = %q", got)
	}
	if got := toString(nil); got != "" {
		t.Errorf("toString(nil) = %q", got)
	}

	stamp := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	if got := toTime(stamp); !got.Equal(stamp) {
		t.Errorf("toTime(time.Time) = %v", got)
	}
	if got := toTime("2024-05-20"); !got.Equal(stamp) {
		t.Errorf("toTime(date string) = %v", got)
	}
	if got := toTime("garbage"); !got.IsZero() {
		t.Errorf("toTime(garbage) = %v, want zero", got)
	}
}

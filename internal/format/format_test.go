package format

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2023-05-14", "14 May 2023"},
		{"2024-01-01T00:00:00Z", "1 January 2024"},
		{"  2023-05-14  ", "14 May 2023"},
		{"", ""},
		{"not-a-date", "not-a-date"},
	}
	for _, tc := range cases {
		if got := Date(tc.in); got != tc.want {
			t.Errorf("Date(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDaysAndYears(t *testing.T) {
	if got := Days(1); got != "1 day" {
		t.Errorf("Days(1) = %q", got)
	}
	if got := Days(347); got != "347 days" {
		t.Errorf("Days(347) = %q", got)
	}
	if got := Years(5); got != "5 years" {
		t.Errorf("Years(5) = %q", got)
	}
}

func TestYearsMonths(t *testing.T) {
	cases := []struct {
		years, months int
		want          string
	}{
		{0, 0, "0 months"},
		{0, 1, "1 month"},
		{0, 4, "4 months"},
		{1, 0, "1 year"},
		{2, 0, "2 years"},
		{1, 3, "1 year, 3 months"},
		{2, 1, "2 years, 1 month"},
	}
	for _, tc := range cases {
		if got := YearsMonths(tc.years, tc.months); got != tc.want {
			t.Errorf("YearsMonths(%d, %d) = %q, want %q", tc.years, tc.months, got, tc.want)
		}
	}
}

func TestAgo(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		t    time.Time
		want string
	}{
		{time.Time{}, ""},
		{now, "now"},
		{now.Add(-30 * time.Second), "30s ago"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-3 * time.Hour), "3h ago"},
		{now.Add(-48 * time.Hour), "12:00:00"},
	}
	for _, tc := range cases {
		if got := Ago(tc.t, now); got != tc.want {
			t.Errorf("Ago(%v) = %q, want %q", tc.t, got, tc.want)
		}
	}
}

package normalize

import (
	"testing"
	"time"
)

func TestPeriodCodeToMonth(t *testing.T) {
	tests := []struct {
		code string
		want time.Month
	}{
		{"M01", time.January},
		{"M05", time.May},
		{"M12", time.December},
		{"M13", time.January}, // Out of range falls back
		{"M00", time.January},
		{"A01", time.January}, // Annual code falls back
		{"Q02", time.January}, // Quarterly code falls back
		{"", time.January},
		{"M1", time.January},
		{"month", time.January},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := PeriodCodeToMonth(tt.code); got != tt.want {
				t.Errorf("PeriodCodeToMonth(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestIsBlankOrSentinel(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{".", true},
		{" . ", true},
		{"0", false},
		{"3.2", false},
		{"-0.4", false},
		{"..", false},
	}

	for _, tt := range tests {
		if got := IsBlankOrSentinel(tt.raw); got != tt.want {
			t.Errorf("IsBlankOrSentinel(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	d, err := ParseDecimal(" 310.1 ")
	if err != nil {
		t.Fatalf("ParseDecimal(310.1) error = %v", err)
	}
	if d.String() != "310.1" {
		t.Errorf("ParseDecimal(310.1) = %s", d)
	}

	if _, err := ParseDecimal("."); err == nil {
		t.Error("ParseDecimal(\".\") expected error")
	}
	if _, err := ParseDecimal("abc"); err == nil {
		t.Error("ParseDecimal(\"abc\") expected error")
	}
	if _, err := ParseDecimal(""); err == nil {
		t.Error("ParseDecimal(\"\") expected error")
	}
}

func TestMonthStart(t *testing.T) {
	got, err := MonthStart("2024", time.May)
	if err != nil {
		t.Fatalf("MonthStart error = %v", err)
	}
	want := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MonthStart(2024, May) = %v, want %v", got, want)
	}

	if _, err := MonthStart("twenty24", time.May); err == nil {
		t.Error("MonthStart with non-numeric year expected error")
	}
}

func TestDateOnly(t *testing.T) {
	tests := []struct {
		ts   string
		want string
	}{
		{"2024-06-14T15:04:05Z", "2024-06-14"},
		{"2024-06-14T15:04:05+05:30", "2024-06-14"},
		{"2024-06-14T23:59:59", "2024-06-14"},
		{"2024-06-14", "2024-06-14"},
	}

	for _, tt := range tests {
		t.Run(tt.ts, func(t *testing.T) {
			got, err := DateOnly(tt.ts)
			if err != nil {
				t.Fatalf("DateOnly(%q) error = %v", tt.ts, err)
			}
			if got.Format(time.DateOnly) != tt.want {
				t.Errorf("DateOnly(%q) = %v, want %s", tt.ts, got, tt.want)
			}
			if h, m, s := got.Clock(); h != 0 || m != 0 || s != 0 {
				t.Errorf("DateOnly(%q) kept time of day: %v", tt.ts, got)
			}
		})
	}

	if _, err := DateOnly("not a timestamp"); err == nil {
		t.Error("DateOnly with garbage expected error")
	}
}

package services

import (
	"math"
	"testing"
)

func TestNumericOrZero(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain number", "850000", 850000},
		{"padded", "  42000 ", 42000},
		{"decimal", "12.5", 12.5},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"mixed", "12abc", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NumericOrZero(tc.raw); got != tc.want {
				t.Fatalf("NumericOrZero(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNumericOrUnboundedTreatsAbsenceAsNoBound(t *testing.T) {
	if got := NumericOrUnbounded(""); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for empty bound, got %v", got)
	}
	if got := NumericOrUnbounded("junk"); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for non-numeric bound, got %v", got)
	}
	if got := NumericOrUnbounded("900000"); got != 900000 {
		t.Fatalf("expected numeric bound kept, got %v", got)
	}
}

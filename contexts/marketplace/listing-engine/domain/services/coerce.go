package services

import (
	"math"
	"strconv"
	"strings"
)

// NumericOrZero is the one sanctioned coercion of free-form numeric strings.
// Empty or non-numeric values become 0. Filter, sort and display all go
// through here so the loose domain rule stays consistent.
func NumericOrZero(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return value
}

// NumericOrUnbounded coerces an upper price bound; absent or non-numeric
// means no bound.
func NumericOrUnbounded(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return math.Inf(1)
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return math.Inf(1)
	}
	return value
}

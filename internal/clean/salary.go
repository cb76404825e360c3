package clean

import (
	"math"
	"strconv"
	"strings"

	"aitrends/domain/ingestion"
)

// ResolveRange parses a textual "low-high" salary range into the arithmetic
// mean of its two bounds. Any failure yields a missing value, never an error;
// missing values are dropped later during cleaning. A range with low > high
// is accepted verbatim.
func ResolveRange(raw string) ingestion.Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ingestion.NewMissingValue()
	}

	parts := strings.Split(trimmed, "-")
	if len(parts) != 2 {
		return ingestion.NewMissingValue()
	}

	low, err := parseFinite(parts[0])
	if err != nil {
		return ingestion.NewMissingValue()
	}
	high, err := parseFinite(parts[1])
	if err != nil {
		return ingestion.NewMissingValue()
	}

	return ingestion.NewNumericValue((low + high) / 2)
}

// CoerceNumeric strictly coerces an already-numeric salary cell. Values that
// fail coercion become missing.
func CoerceNumeric(raw string) ingestion.Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ingestion.NewMissingValue()
	}

	n, err := parseFinite(trimmed)
	if err != nil {
		return ingestion.NewMissingValue()
	}
	return ingestion.NewNumericValue(n)
}

func parseFinite(s string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, strconv.ErrRange
	}
	return n, nil
}

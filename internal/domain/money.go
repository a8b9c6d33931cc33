package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeCurrency parses a locale-formatted currency string into a float.
// The rightmost separator (comma or dot) is taken as the decimal point and
// any separators to its left as thousands separators, so both "1.234,56" and
// "1,234.56" parse to 1234.56. Everything that is not a digit or separator is
// stripped first. Empty or garbled input yields 0.0; extraction upstream is
// noisy enough that a missing value must not fail the row.
func NormalizeCurrency(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" {
		return 0.0
	}

	lastComma := strings.LastIndexByte(s, ',')
	lastDot := strings.LastIndexByte(s, '.')
	sep := lastComma
	if lastDot > sep {
		sep = lastDot
	}

	if sep >= 0 {
		intPart := strings.Map(dropSeparators, s[:sep])
		fracPart := strings.Map(dropSeparators, s[sep+1:])
		s = intPart + "." + fracPart
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}
	return v
}

func dropSeparators(r rune) rune {
	if r == ',' || r == '.' {
		return -1
	}
	return r
}

// Round2 rounds a monetary value to two decimals. Rounding happens at
// comparison time only; stored values keep the input resolution.
func Round2(v float64) float64 {
	r, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return r
}

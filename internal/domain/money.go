package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CentsToDecimal renders an amount of cents as a decimal string with two
// fraction digits, e.g. 2599 -> "25.99". Used at the wire edges; internally
// money stays in int64 cents.
func CentsToDecimal(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// DecimalToCents parses a decimal price string ("25.99", "25.9", "25") into
// cents. More than two fraction digits are rejected rather than rounded.
func DecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	// Digits only past this point. strconv would also accept a sign inside
	// either part, turning a typo like "10.-5" into a wrong amount.
	if !allDigits(whole) || (hasFrac && !allDigits(frac)) {
		return 0, fmt.Errorf("parse price %q: not a decimal amount", s)
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", s, err)
	}
	var cents int64
	switch len(frac) {
	case 0:
	case 1:
		d, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse price %q: %w", s, err)
		}
		cents = d * 10
	case 2:
		d, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse price %q: %w", s, err)
		}
		cents = d
	default:
		return 0, fmt.Errorf("parse price %q: too many fraction digits", s)
	}
	total := units*100 + cents
	if negative {
		total = -total
	}
	return total, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

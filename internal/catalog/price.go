package catalog

import (
	"math"
	"strconv"
	"strings"
)

// ParsePrice normalizes an admin-entered price string for arithmetic.
// Every rune that is not a digit or decimal point is stripped before
// parsing, so "25,000 IQD" becomes 25000. Anything that still fails to
// parse contributes 0 rather than poisoning a total.
func ParsePrice(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

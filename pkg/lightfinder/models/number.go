package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// parseNumberText parses numeric cell text: a whole number such as "1.2E+03",
// or a number followed by a unit such as "12W". Non-finite values fail.
func parseNumberText(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return f, finite(f)
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return leadingNumber(s)
}

// leadingNumber parses the numeric prefix of s, ignoring a trailing unit.
func leadingNumber(s string) (float64, bool) {
	end := 0
	for end < len(s) {
		ch := s[end]
		if (ch >= '0' && ch <= '9') || ch == '.' || ((ch == '-' || ch == '+') && end == 0) {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return f, finite(f)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

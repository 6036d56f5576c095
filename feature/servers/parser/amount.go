package parser

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	perSecondPattern = regexp.MustCompile(`(?i)/s|persec`)
	amountPattern    = regexp.MustCompile(`\$?([0-9]+)(?:\.([0-9]+))?([KkMmBbTtQq]?)`)
)

// suffixExponent maps a magnitude suffix to its power of ten.
var suffixExponent = map[string]int{
	"":  0,
	"K": 3,
	"M": 6,
	"B": 9,
	"T": 12,
	"Q": 15,
}

// ParseAmount decodes a human-written magnitude such as "$1.2M", "350K/s"
// or "**4.5M per sec**" into an integer, truncating toward zero.
// Input without any digits yields 0. Results beyond int64 saturate.
//
// The first number in the string wins, so "Money: $5M" parses as 5000000.
func ParseAmount(raw string) int64 {
	if raw == "" {
		return 0
	}

	s := strings.ReplaceAll(raw, "*", "")
	s = strings.Join(strings.Fields(s), "")
	s = perSecondPattern.ReplaceAllString(s, "")

	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	return scale(m[1], m[2], suffixExponent[strings.ToUpper(m[3])])
}

// scale computes floor(whole.frac * 10^exp) on the decimal digits directly,
// so "1.2" with exponent 3 is exactly 1200.
func scale(whole, frac string, exp int) int64 {
	if len(frac) > exp {
		frac = frac[:exp]
	}
	digits := whole + frac + strings.Repeat("0", exp-len(frac))
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return 0
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt64
	}
	if err != nil {
		return 0
	}
	return n
}

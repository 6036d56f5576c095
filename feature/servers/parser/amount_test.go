package parser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"$1.2K", 1200},
		{"350", 350},
		{"2M/s", 2000000},
		{"", 0},
		{"abc", 0},
		{"**$4.5M**", 4500000},
		{"350 K per sec", 350000},
		{"$ 12.5 M/s", 12500000},
		{"1.5 B", 1500000000},
		{"3t", 3000000000000},
		{"1.5Q", 1500000000000000},
		{"1.999K", 1999},
		{"1.2345K", 1234},
		{"0.9", 0},
		{"007", 7},
		{"Money: $5M", 5000000},
		{"99999999999T", math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.raw))
		})
	}
}

func TestParseAmount_SuffixCaseInsensitive(t *testing.T) {
	for _, pair := range [][2]string{{"1k", "1K"}, {"2.5m", "2.5M"}, {"7b", "7B"}, {"4q", "4Q"}} {
		assert.Equal(t, ParseAmount(pair[1]), ParseAmount(pair[0]), pair[0])
	}
}

func TestParseAmount_NeverNegative(t *testing.T) {
	for _, raw := range []string{"-5", "$-1.2K", "--", "-"} {
		assert.GreaterOrEqual(t, ParseAmount(raw), int64(0), raw)
	}
}

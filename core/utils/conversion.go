package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToInt64 converts loosely typed values to int64 using explicit type switching.
// Floats are truncated toward zero and clamped to the int64 range. Strings
// must hold a plain decimal number. The boolean reports whether val was
// convertible.
func ToInt64(val any) (int64, bool) {
	switch v := val.(type) {
	case nil:
		return 0, true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(v), true
	case float64:
		return clampFloat(v), true
	case float32:
		return clampFloat(float64(v)), true
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return clampFloat(f), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, true
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return clampFloat(f), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func clampFloat(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

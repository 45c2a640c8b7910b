// Package safe provides helpers for safe numeric conversions with range checks.
package safe

import (
	"fmt"
	"strconv"
)

// Integer is the set of built-in integer kinds accepted by the converters.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// ParseUint64 parses a base-10 unsigned integer. Signs, blanks and fractions are rejected.
func ParseUint64(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q as uint64: %w", s, err)
	}
	return v, nil
}

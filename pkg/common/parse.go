// Package common provides the primitive registry, lifecycle hooks and small parsing helpers.
package common

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// FormatPercent formats a percent value without trailing zeros (e.g. 95, 95.5).
func FormatPercent(p float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.15g", p), ".0")
}

// ParsePercent parses a percent string such as "50%" into a value in [0,100].
func ParsePercent(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("percentage cannot be empty")
	}
	s = strings.TrimSuffix(s, "%")
	percent, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage: %s", s)
	}
	if percent < 0 || percent > 100 {
		return 0, fmt.Errorf("percentage must be in [0,100]: %s", s)
	}
	return percent, nil
}

// ParseInt64 parses a string as int64 and returns an error if invalid or negative.
func ParseInt64(s string) (int64, error) {
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil || val < 0 {
		return 0, fmt.Errorf("invalid int64: %s", s)
	}
	return val, nil
}

// ParseHex decodes s, ignoring an optional 0x prefix and surrounding spaces,
// and checks that it holds exactly n bytes.
func ParseHex(s string, n int) ([]byte, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %s", s)
	}
	if len(b) != n {
		return nil, fmt.Errorf("expected %d bytes, got %d", n, len(b))
	}
	return b, nil
}

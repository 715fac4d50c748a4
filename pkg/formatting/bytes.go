// Package formatting provides parsing utilities for generative model output
// and human-readable configuration values such as byte sizes.
package formatting

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// ParseBytes reads a size such as "2MB", "512 KiB" or "1048576". Config
// sizes are binary whether written SI style or IEC style, so "MB" and "MiB"
// both mean 1<<20. A bare number is a byte count.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size")
	}
	if !unicode.IsDigit(rune(s[0])) {
		return 0, fmt.Errorf("invalid byte size %q: missing number", s)
	}

	n, err := humanize.ParseBytes(binaryUnits(s))
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q: %w", s, err)
	}
	if n > math.MaxInt64 {
		return 0, fmt.Errorf("invalid byte size %q: overflows int64", s)
	}
	return int64(n), nil
}

// binaryUnits rewrites an SI suffix ("MB", "m") to its IEC form ("MiB") so
// humanize applies powers of 1024.
func binaryUnits(s string) string {
	cut := strings.LastIndexFunc(s, func(r rune) bool {
		return unicode.IsDigit(r) || r == '.' || r == ' '
	}) + 1
	number, unit := s[:cut], strings.ToUpper(s[cut:])

	switch unit {
	case "K", "KB", "M", "MB", "G", "GB", "T", "TB", "P", "PB", "E", "EB":
		return number + unit[:1] + "iB"
	}
	return s
}

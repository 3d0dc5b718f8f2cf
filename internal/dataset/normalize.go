package dataset

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the only accepted shape of a normalized time field.
const TimestampLayout = "2006-01-02 15:04:05 -0700"

var (
	offsetToken = regexp.MustCompile(`^[+-]\d{4}$`)
	zoneLabel   = regexp.MustCompile(`^[A-Za-z][A-Za-z_/]*$`)
)

// NormalizeTimestamp strips zone-name labels (e.g. "JST", "Asia/Tokyo") from a raw
// time string and keeps the numeric offset:
//
//	"2021-12-22 10:00:00 +0900 JST" -> "2021-12-22 10:00:00 +0900"
//	"2021-12-22 10:00:00 JST +0900" -> "2021-12-22 10:00:00 +0900"
//
// It does not validate the date or clock; ParseTimestamp does.
// A missing or repeated offset, or any other leftover token, is ErrMalformedTimestamp.
func NormalizeTimestamp(raw string) (string, error) {
	fields := strings.Fields(raw)
	if len(fields) < 3 {
		return "", fmt.Errorf("%w: %q: want date, clock and offset", ErrMalformedTimestamp, raw)
	}

	var offset string
	for _, tok := range fields[2:] {
		switch {
		case offsetToken.MatchString(tok):
			if offset != "" {
				return "", fmt.Errorf("%w: %q: more than one offset", ErrMalformedTimestamp, raw)
			}
			offset = tok
		case zoneLabel.MatchString(tok):
			// zone name, dropped
		default:
			return "", fmt.Errorf("%w: %q: unexpected token %q", ErrMalformedTimestamp, raw, tok)
		}
	}
	if offset == "" {
		return "", fmt.Errorf("%w: %q: missing numeric UTC offset", ErrMalformedTimestamp, raw)
	}

	return fields[0] + " " + fields[1] + " " + offset, nil
}

// ParseTimestamp parses a normalized time string into an offset-aware time.
func ParseTimestamp(normalized string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, normalized)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedTimestamp, normalized, err)
	}
	return t, nil
}

// ParsePrice converts a numeric string into an exact decimal whose whole
// part fits in an int64.
func ParsePrice(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedPrice, raw)
	}
	// Candles carry whole units as int64.
	if !d.Truncate(0).BigInt().IsInt64() {
		return decimal.Zero, fmt.Errorf("%w: %q out of int64 range", ErrMalformedPrice, raw)
	}
	return d, nil
}

package aggregate

import (
	"fmt"
	"strings"
	"time"
)

// JST is the fixed +09:00 zone the order-book timestamps are recorded in.
// Unlike the Asia/Tokyo database entry it has no historical DST or LMT offsets.
var JST = time.FixedZone("JST", 9*3600)

// LoadLocation resolves a DATASET_TIMEZONE value.
//
//   - "" and "JST" give the fixed JST zone.
//   - A numeric offset such as "+0900" or "-0330" gives a fixed zone.
//   - Anything else is looked up as an IANA name.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "" || strings.EqualFold(name, "JST"):
		return JST, nil
	case strings.HasPrefix(name, "+") || strings.HasPrefix(name, "-"):
		t, err := time.Parse("-0700", name)
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q: %w", name, err)
		}
		_, offset := t.Zone()
		return time.FixedZone(name, offset), nil
	}
	return time.LoadLocation(name)
}

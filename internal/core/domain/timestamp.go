package domain

import (
	"strconv"
	"strings"
	"time"
)

// Epoch value magnitudes used to disambiguate numeric timestamps.
// Garmin exports mix epoch milliseconds, epoch seconds and ISO strings,
// sometimes within the same file across firmware versions.
const (
	epochMillisFloor  = 1_000_000_000_000
	epochSecondsFloor = 1_000_000_000
)

// isoLayouts are the string formats observed in Garmin export files,
// tried in order.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.0",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp converts a raw JSON value into a time.Time. It accepts
// epoch milliseconds, epoch seconds (numbers or numeric strings) and the
// ISO layouts above. The boolean result is false when the value cannot be
// interpreted as a date; callers drop such records.
func ParseTimestamp(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case float64:
		return fromEpoch(t)
	case int64:
		return fromEpoch(float64(t))
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return fromEpoch(n)
		}
		for _, layout := range isoLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// fromEpoch interprets a numeric value as epoch milliseconds or seconds
// depending on its magnitude.
func fromEpoch(n float64) (time.Time, bool) {
	switch {
	case n >= epochMillisFloor:
		return time.UnixMilli(int64(n)).UTC(), true
	case n >= epochSecondsFloor:
		return time.Unix(int64(n), 0).UTC(), true
	default:
		return time.Time{}, false
	}
}

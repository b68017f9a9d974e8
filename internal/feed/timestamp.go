package feed

import (
	"fmt"
	"strings"
	"time"
)

// tzAbbrevs pins the US timezone abbreviations sports feeds actually emit.
// time.Parse resolves an unknown abbreviation to offset zero, which silently
// shifts a "7:05 PM EST" first pitch five hours into the future.
var tzAbbrevs = map[string]int{
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

var timestampLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC3339,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses the published/updated strings RSS and Atom feeds use
// and returns the instant in UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return fixZoneAbbrev(t).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", raw)
}

// fixZoneAbbrev re-anchors a time whose zone abbreviation parsed to offset
// zero onto the real US offset. Times that already carry an offset pass
// through untouched.
func fixZoneAbbrev(t time.Time) time.Time {
	name, offset := t.Zone()
	if offset != 0 || name == "" || name == "UTC" || name == "GMT" {
		return t
	}
	sec, ok := tzAbbrevs[name]
	if !ok {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond(), time.FixedZone(name, sec))
}

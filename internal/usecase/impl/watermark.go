package impl

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// The delta-sync watermark travels as a string-encoded Unix timestamp with a
// fractional part ("1700000000.5"). lastUpdated in a response must round-trip
// through the client's next passesUpdatedSince query parameter exactly, so
// both directions work on decimal digits; a float64 detour loses nanoseconds
// at current epochs and would make a pass match its own watermark again.

// formatWatermark renders t in the wire representation.
func formatWatermark(t time.Time) string {
	seconds := strconv.FormatInt(t.Unix(), 10)

	nanos := t.Nanosecond()
	if nanos == 0 {
		return seconds
	}

	frac := strings.TrimRight(strconv.FormatInt(int64(nanos)+int64(time.Second), 10)[1:], "0")

	return seconds + "." + frac
}

// parseWatermark parses the wire representation back into a time.
func parseWatermark(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)

	secondsPart, fracPart, hasFrac := strings.Cut(trimmed, ".")

	seconds, err := strconv.ParseInt(secondsPart, 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "invalid watermark seconds")
	}

	var nanos int64
	if hasFrac {
		if fracPart == "" {
			return time.Time{}, errors.Errorf("invalid watermark fraction in %q", trimmed)
		}
		// Digits beyond nanosecond resolution are dropped.
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}

		nanos, err = strconv.ParseInt(fracPart+strings.Repeat("0", 9-len(fracPart)), 10, 64)
		if err != nil {
			return time.Time{}, errors.Wrap(err, "invalid watermark fraction")
		}
	}

	return time.Unix(seconds, nanos).UTC(), nil
}

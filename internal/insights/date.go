// ABOUTME: Date key normalization between display format and sortable ISO keys.
// ABOUTME: Entry dates appear as MM-DD-YYYY or YYYY-MM-DD depending on their source.
package insights

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// NormalizeDateKey canonicalizes a date string to YYYY-MM-DD. Input with a
// two-character first segment is treated as MM-DD-YYYY and reordered with
// zero padding; anything else passes through unchanged, so canonical input
// is a fixed point. The first-segment-length heuristic cannot distinguish
// two-digit years; entry dates are only ever written in the two supported
// shapes.
func NormalizeDateKey(dateStr string) string {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 || len(parts[0]) != 2 {
		return dateStr
	}
	month, day, year := parts[0], parts[1], parts[2]
	return year + "-" + pad2(month) + "-" + pad2(day)
}

// WeekdayLabel returns the short weekday name ("Mon".."Sun") for an ISO date.
func WeekdayLabel(isoDate string) (string, error) {
	t, err := time.Parse(dateLayout, isoDate)
	if err != nil {
		return "", err
	}
	return t.Format("Mon"), nil
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

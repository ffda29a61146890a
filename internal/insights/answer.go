// ABOUTME: Raw answer normalization: coerces loosely typed stored answers to counts.
// ABOUTME: Total over any input; malformed answers degrade to 0, never error.
package insights

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParseAnswerCount interprets a raw stored answer as a count. Historical
// answers may be JSON-encoded ("\"3\"", "true"), bare numbers ("5", "2.5"),
// or junk. JSON interpretation is attempted first, then a direct parse.
// Anything unusable yields 0; negative values are clamped to 0.
func ParseAnswerCount(raw string) int {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		switch n := v.(type) {
		case float64:
			return clampCount(int(n))
		case bool:
			if n {
				return 1
			}
			return 0
		case string:
			return clampCount(parseLooseInt(n))
		default:
			// null, arrays, objects
			return 0
		}
	}
	return clampCount(parseLooseInt(raw))
}

// parseLooseInt parses an integer from s, tolerating float values and
// trailing garbage ("5 times" yields 5). Returns 0 when no leading numeric
// value exists.
func parseLooseInt(s string) int {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}

	// Fall back to the longest numeric prefix.
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || (end == 0 && (s[end] == '-' || s[end] == '+'))) {
		end++
	}
	if end == 0 || (end == 1 && (s[0] == '-' || s[0] == '+')) {
		return 0
	}
	i, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return i
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

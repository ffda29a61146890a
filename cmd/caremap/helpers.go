// ABOUTME: Shared output helpers for CLI commands.
// ABOUTME: String padding and truncation for aligned table-ish output.
package main

import "strings"

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// Package format provides formatting utilities for UI presentation.
package format

import "strings"

// StatusIcon returns the glyph shown before a report title.
// It gives each outcome a visual distinction on terminals.
func StatusIcon(status string) string {
	switch strings.ToLower(status) {
	case "updated":
		return "✓"
	case "unchanged":
		return "="
	case "dry-run":
		return "◌"
	case "error":
		return "✗"
	default:
		return "•"
	}
}

package validate

import (
	"path/filepath"
	"strings"
	"unicode"
)

// SanitizeReason trims a reason and removes control characters. Line breaks
// and tabs become single spaces so each reason stays on one line.
func SanitizeReason(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	lastSpace := false
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' {
			r = ' '
		}
		if unicode.IsControl(r) {
			continue
		}
		if r == ' ' {
			if lastSpace {
				continue
			}
			lastSpace = true
		} else {
			lastSpace = false
		}
		sb.WriteRune(r)
	}

	return strings.TrimSpace(sb.String())
}

// SanitizeFilename removes path components and dangerous characters from a filename.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)

	var sb strings.Builder
	for _, r := range name {
		if r == '/' || r == '\\' || r == ':' || r == '*' ||
			r == '?' || r == '"' || r == '<' || r == '>' || r == '|' {
			sb.WriteRune('_')
		} else if r >= 32 && r != 127 {
			sb.WriteRune(r)
		}
	}

	result := sb.String()
	if result == "" || result == "." || result == ".." {
		return "unnamed"
	}
	return result
}

// Truncate shortens a string to at most maxLen runes, adding "..." when cut.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

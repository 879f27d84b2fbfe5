package common

import (
	"path/filepath"
	"strings"
)

// AccountFromFilename derives an account label from a statement file name when
// none was configured: the base name without extension, sanitized.
func AccountFromFilename(filename string) string {
	base := filepath.Base(filename)
	return SanitizeAccountID(strings.TrimSuffix(base, filepath.Ext(base)))
}

// SanitizeAccountID reduces an account label to letters, digits, underscores,
// hyphens and dots. Spaces become underscores, ".." sequences are removed, and an
// empty result is "UNKNOWN".
func SanitizeAccountID(accountID string) string {
	sanitized := strings.ReplaceAll(strings.TrimSpace(accountID), " ", "_")

	var result strings.Builder
	for _, r := range sanitized {
		if (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '_' || r == '-' || r == '.' {
			result.WriteRune(r)
		} else {
			result.WriteRune('_')
		}
	}
	sanitized = result.String()

	for strings.Contains(sanitized, "..") {
		sanitized = strings.ReplaceAll(sanitized, "..", "_")
	}
	for strings.Contains(sanitized, "__") {
		sanitized = strings.ReplaceAll(sanitized, "__", "_")
	}
	sanitized = strings.Trim(sanitized, "_.")

	if sanitized == "" {
		sanitized = "UNKNOWN"
	}
	return sanitized
}

package errors

import (
	"strings"
	"unicode"
)

// ValidateURL validates a registry URL.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidConfig, "URL must use http or https scheme")
	}

	return nil
}

// ValidateMarkers checks a start/end marker pair for the README splice.
//
// Markers must be non-empty, distinct, free of line breaks and control
// characters, and neither may contain the other (the span search would
// otherwise match the wrong marker).
func ValidateMarkers(start, end string) error {
	for _, m := range []string{start, end} {
		if strings.TrimSpace(m) == "" {
			return New(ErrCodeInvalidConfig, "table markers cannot be empty")
		}
		for _, r := range m {
			if unicode.IsControl(r) {
				return New(ErrCodeInvalidConfig, "table marker %q contains control characters", m)
			}
		}
	}
	if start == end {
		return New(ErrCodeInvalidConfig, "start and end markers must differ")
	}
	if strings.Contains(start, end) || strings.Contains(end, start) {
		return New(ErrCodeInvalidConfig, "markers %q and %q overlap", start, end)
	}
	return nil
}

// ValidatePath validates a local file path from configuration.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidConfig, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidConfig, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "path contains invalid characters")
		}
	}

	return nil
}

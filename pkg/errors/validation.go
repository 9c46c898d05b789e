package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateArtworkID validates a catalog artwork identifier.
// Artwork ids end up in snapshot files, SVG element ids and API paths, so the
// rules are intentionally conservative:
//   - No empty ids
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateArtworkID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidCatalog, "artwork id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidCatalog, "artwork id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCatalog, "artwork id contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidCatalog, "artwork id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateImageRef validates an artwork image reference, which is either a
// local file path or an http(s) URL.
func ValidateImageRef(ref string) error {
	if ref == "" {
		return New(ErrCodeInvalidCatalog, "image reference cannot be empty")
	}

	const maxRefLength = 500
	if len(ref) > maxRefLength {
		return New(ErrCodeInvalidCatalog, "image reference too long (max %d characters)", maxRefLength)
	}

	for _, r := range ref {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidCatalog, "image reference contains invalid characters")
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// hexColorRegex matches a six-digit hex color with leading hash.
var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateHexColor validates a "#rrggbb" color string.
func ValidateHexColor(c string) error {
	if !hexColorRegex.MatchString(c) {
		return New(ErrCodeInvalidInput, "invalid hex color: %q", c)
	}
	return nil
}

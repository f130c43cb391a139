package pipeline

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MediaInput is one uploaded video: raw bytes plus the original
// filename, whose extension declares the container format.
type MediaInput struct {
	Data     []byte
	Filename string
}

// supportedFormats is the container allow-list, keyed by lowercase
// extension.
var supportedFormats = map[string]bool{
	".mp4": true,
	".mov": true,
	".avi": true,
	".mkv": true,
}

// SupportedFormat reports whether the filename's extension is on the
// container allow-list.
func SupportedFormat(filename string) bool {
	return supportedFormats[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeFilename reduces a filename to letters, digits, spaces, dots
// and underscores so it is safe as a path component inside the work
// area. Path separators and traversal sequences cannot survive; a name
// with nothing left after filtering falls back to "input".
func SanitizeFilename(name string) string {
	base := filepath.Base(name)

	var b strings.Builder
	for _, r := range base {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '.' || r == '_' {
			b.WriteRune(r)
		}
	}
	s := strings.TrimRight(b.String(), " ")

	// A dot-only or empty result is not a usable file name.
	if strings.Trim(s, ". _") == "" {
		return "input"
	}
	return s
}

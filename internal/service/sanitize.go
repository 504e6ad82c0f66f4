package service

import (
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces an uploaded filename to a safe flat name:
// any directory prefix (either separator style) is dropped, spaces
// become underscores, characters outside [A-Za-z0-9_.-] are removed,
// and leading/trailing dots and dashes are trimmed so traversal names
// like ".." collapse to nothing. The result may be empty; callers must
// treat that as an invalid upload.
func SanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, ".-")
}

package constants

import "strings"

// AllowedExtensions holds the default allowed file extensions for document submission.
var AllowedExtensions = map[string]struct{}{
	"txt":  {},
	"md":   {},
	"html": {},
	"htm":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// SentenceOrderStride spaces the order field of inserted sentences so a
// sentence can later be moved between two neighbors without renumbering
// every row.
const SentenceOrderStride = 1000

package server

import "strings"

// SanitizeFilename strips path separators, parent references, and
// control characters from a client-supplied filename. The result is
// safe to join under the upload or results directory.
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "..", "")
	filename = strings.ReplaceAll(filename, "/", "")
	filename = strings.ReplaceAll(filename, "\\", "")

	var builder strings.Builder
	for _, r := range filename {
		if r >= 32 && r != 127 {
			builder.WriteRune(r)
		}
	}

	return builder.String()
}

// EscapeFilename escapes a filename for use inside a quoted HTTP
// Content-Disposition parameter.
func EscapeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, `\`, `\\`)
	filename = strings.ReplaceAll(filename, `"`, `\"`)
	return filename
}

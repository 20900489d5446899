package application

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateAbsolutePath checks that value is an absolute filesystem path.
// The disk index builder only accepts absolute roots; a relative root would
// silently resolve against whatever directory the process happens to run in.
func ValidateAbsolutePath(fieldName, value string) error {
	if filepath.IsAbs(value) || isDriveAbs(value) {
		return nil
	}
	return &ValidationError{
		Field:   fieldName,
		Message: fmt.Sprintf("%s must be an absolute path, got: %s", formatFieldName(fieldName), value),
	}
}

// isDriveAbs recognizes Windows drive paths (C:\... or C:/...) so a root
// stored on one platform still validates when inspected on another.
func isDriveAbs(p string) bool {
	if len(p) < 3 || p[1] != ':' {
		return false
	}
	c := p[0]
	if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
		return false
	}
	return p[2] == '/' || p[2] == '\\'
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "rootPath" -> "root path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"rootPath":  "root path",
		"reference": "reference",
		"query":     "query",
		"dir":       "directory",
	}
	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

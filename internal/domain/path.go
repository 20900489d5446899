package domain

import "strings"

// NormalizePath canonicalizes a path to forward-slash form so Windows- and
// POSIX-style spellings of the same path compare and index identically.
// It never fails; an empty input yields an empty string.
func NormalizePath(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// SplitPath splits a path into its non-empty segments. Doubled and trailing
// slashes are tolerated and never produce ghost segments.
func SplitPath(p string) []string {
	var segments []string
	for _, s := range strings.Split(NormalizePath(p), "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// FileURL converts an absolute local path to a file:// URL. A Windows drive
// path keeps its drive letter as part of the URL path component, so
// C:\pictures\x.png becomes file:///C:/pictures/x.png; any other absolute
// path is prefixed with the scheme unchanged.
func FileURL(absPath string) string {
	p := NormalizePath(absPath)
	if isDrivePath(p) {
		return "file:///" + p
	}
	return "file://" + p
}

func isDrivePath(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// Package util holds small helpers shared by the upload paths.
package util

import (
	"fmt"
	"path"
	"strings"
)

// FallbackFilename replaces client filenames that reduce to nothing.
const FallbackFilename = "upload"

// CleanFilename keeps only the base name of a client supplied filename,
// accepting both slash styles, and replaces spaces with underscores.
func CleanFilename(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" || name == ".." || name == "" {
		return FallbackFilename
	}

	return strings.ReplaceAll(name, " ", "_")
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// A filename is considered dated if its stem matches this pattern.
// Output formatting always normalizes spacing to: "YYYYMMDD - Title".
var reDatePrefix = regexp.MustCompile(`^\d{8}\s*-\s*.+$`)

// Stem returns the basename of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsDatedFilename reports whether the filename's stem already carries an
// 8-digit date prefix followed by a hyphen separator and title text.
func IsDatedFilename(filename string) bool {
	return reDatePrefix.MatchString(Stem(filename))
}

// ExistingTitle extracts the title portion from an existing filename.
// For dated names the stem is split on the first hyphen; otherwise the
// whole stem is the title.
func ExistingTitle(path string) string {
	stem := Stem(path)
	if !IsDatedFilename(filepath.Base(path)) {
		return stem
	}
	parts := strings.SplitN(stem, "-", 2)
	if len(parts) != 2 {
		return stem
	}
	return strings.TrimSpace(parts[1])
}

package naming

import (
	"regexp"
	"strings"
	"unicode"
)

// Characters rejected on Windows filenames. Dropped on every platform to
// keep names portable.
const invalidWinChars = `<>:"/\|?*`

var reMultiSpace = regexp.MustCompile(`\s+`)

// SanitizeTitle normalizes a title into a safe, portable filename component.
// The pipeline, in order: trim, strip one layer of matching surrounding
// quotes, drop control characters, drop filesystem-invalid characters,
// collapse whitespace runs. It never adds an extension or a date.
func SanitizeTitle(title string, preferTitleCase bool) string {
	t := strings.TrimSpace(title)
	t = stripSurroundingQuotes(t)

	// Control characters can corrupt terminal output; drop them early.
	t = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, t)

	t = strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidWinChars, r) {
			return -1
		}
		return r
	}, t)

	t = strings.TrimSpace(reMultiSpace.ReplaceAllString(t, " "))

	if preferTitleCase {
		t = titleCase(t)
	}
	return t
}

// stripSurroundingQuotes removes one layer of matching double or single
// quotes. LLM output frequently arrives quoted.
func stripSurroundingQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// titleCase capitalizes the first letter of each word. Word boundaries are
// spaces, hyphens, and underscores; letters following an apostrophe are
// left alone ("dad's" becomes "Dad's", not "Dad'S"). The remainder of each
// word is untouched, so acronyms and numerals pass through unchanged.
func titleCase(s string) string {
	prev := ' '
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) && (prev == ' ' || prev == '-' || prev == '_') {
			prev = r
			return unicode.ToUpper(r)
		}
		prev = r
		return r
	}, s)
}

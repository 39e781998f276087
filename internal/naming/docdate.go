package naming

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date patterns recognized inside document text, tried in order.
// First match wins.
var (
	reISODate = regexp.MustCompile(
		`\b((?:19|20)\d{2})-(\d{2})-(\d{2})\b`)

	reDottedDate = regexp.MustCompile(
		`\b(\d{2})\.(\d{2})\.((?:19|20)\d{2})\b`)

	reMonthNameDate = regexp.MustCompile(
		`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+(\d{1,2}),?\s+((?:19|20)\d{2})\b`)
)

var monthNumbers = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

// FindDocDate scans an excerpt for a document date and returns it as an
// 8-digit prefix. Recognized forms: ISO "2025-12-05", dotted European
// "05.12.2025", and "December 5, 2025". Candidates that do not form a real
// calendar date are rejected.
func FindDocDate(excerpt string) (string, bool) {
	if m := reISODate.FindStringSubmatch(excerpt); m != nil {
		if d, ok := validDate(m[1] + m[2] + m[3]); ok {
			return d, true
		}
	}
	if m := reDottedDate.FindStringSubmatch(excerpt); m != nil {
		if d, ok := validDate(m[3] + m[2] + m[1]); ok {
			return d, true
		}
	}
	if m := reMonthNameDate.FindStringSubmatch(excerpt); m != nil {
		month := monthNumbers[strings.ToLower(m[1])]
		candidate := fmt.Sprintf("%s%02d%s", m[3], month, padDay(m[2]))
		if d, ok := validDate(candidate); ok {
			return d, true
		}
	}
	return "", false
}

func padDay(day string) string {
	if len(day) == 1 {
		return "0" + day
	}
	return day
}

// validDate checks that an 8-digit candidate is a real calendar date by
// round-tripping it through time.Parse.
func validDate(candidate string) (string, bool) {
	t, err := time.Parse("20060102", candidate)
	if err != nil || t.Format("20060102") != candidate {
		return "", false
	}
	return candidate, true
}

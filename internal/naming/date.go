package naming

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"
)

// ErrInvalidDate is returned when an explicit date override is not exactly
// eight digits (YYYYMMDD).
var ErrInvalidDate = errors.New("date must be YYYYMMDD")

var reEightDigits = regexp.MustCompile(`^\d{8}$`)

// ChooseDatePrefix applies the date selection priority:
//
//  1. explicit override (must be exactly 8 digits)
//  2. file mtime, when useMtime is set
//  3. today's local date
//
// Exactly one source is chosen per call; there is no merging.
func ChooseDatePrefix(path string, explicit string, useMtime bool) (string, error) {
	if explicit != "" {
		if !reEightDigits.MatchString(explicit) {
			return "", fmt.Errorf("%w (got %q)", ErrInvalidDate, explicit)
		}
		return explicit, nil
	}

	if useMtime {
		fi, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("stat for mtime date: %w", err)
		}
		return fi.ModTime().Local().Format("20060102"), nil
	}

	return time.Now().Format("20060102"), nil
}

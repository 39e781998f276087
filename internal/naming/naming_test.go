package naming

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsDatedFilename(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		want     bool
	}{
		{"standard dated", "20251205 - Title.docx", true},
		{"tight spacing", "20251205- Title.pdf", true},
		{"no spacing", "20251205-Title.pdf", true},
		{"extra spacing", "20251205  -  Title.txt", true},
		{"hyphenated date", "2025-12-05 - Title.docx", false},
		{"nine digits", "202512051 - Title.docx", false},
		{"seven digits", "2025120 - Title.docx", false},
		{"no title after hyphen", "20251205 -.txt", false},
		{"no hyphen", "20251205 Title.txt", false},
		{"plain name", "invoice.pdf", false},
		{"date only stem", "20251205.pdf", false},
		{"full path", "/scans/in/20251205 - Title.docx", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsDatedFilename(tc.filename); got != tc.want {
				t.Errorf("IsDatedFilename(%q) = %v, want %v", tc.filename, got, tc.want)
			}
		})
	}
}

func TestExistingTitle(t *testing.T) {
	cases := []struct {
		name string
		path string
		want string
	}{
		{"dated", "20251205 - Tax Letter.pdf", "Tax Letter"},
		{"dated with inner hyphen", "20251205 - Tax-Letter.pdf", "Tax-Letter"},
		{"undated", "Tax Letter.pdf", "Tax Letter"},
		{"undated with hyphen", "scan-001.pdf", "scan-001"},
		{"full path", "/in/20240101 - Note.txt", "Note"},
		{"no extension", "20240101 - Note", "Note"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExistingTitle(tc.path); got != tc.want {
				t.Errorf("ExistingTitle(%q) = %q, want %q", tc.path, got, tc.want)
			}
		})
	}
}

func TestSanitizeTitle(t *testing.T) {
	cases := []struct {
		name      string
		title     string
		titleCase bool
		want      string
	}{
		{"quotes and invalid chars", `  "hello: world  /  test"   `, false, "hello world test"},
		{"title case", "the quick brown fox", true, "The Quick Brown Fox"},
		{"apostrophe preserved", "Dad's cheat sheet", true, "Dad's Cheat Sheet"},
		{"single quotes stripped", "'Quarterly Report'", false, "Quarterly Report"},
		{"control chars dropped", "bad\x00name\x1ftab\x7f", false, "badnametab"},
		{"windows chars dropped", `a<b>c|d?e*f\g`, false, "abcdefg"},
		{"whitespace collapsed", "a \t b\n c", false, "a b c"},
		{"hyphen word boundary", "mother-in-law visit", true, "Mother-In-Law Visit"},
		{"acronym untouched", "NASA budget FAQ", true, "NASA Budget FAQ"},
		{"numerals untouched", "3 easy steps", true, "3 Easy Steps"},
		{"empty", "", false, ""},
		{"only quotes", `""`, false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeTitle(tc.title, tc.titleCase); got != tc.want {
				t.Errorf("SanitizeTitle(%q, %v) = %q, want %q",
					tc.title, tc.titleCase, got, tc.want)
			}
		})
	}
}

func TestBuildTargetName(t *testing.T) {
	got := BuildTargetName("20260110", "Title", ".pdf")
	if got != "20260110 - Title.pdf" {
		t.Errorf("BuildTargetName = %q, want %q", got, "20260110 - Title.pdf")
	}
}

func TestChooseDatePrefix_Explicit(t *testing.T) {
	got, err := ChooseDatePrefix("ignored.txt", "20251205", false)
	if err != nil {
		t.Fatalf("ChooseDatePrefix: %v", err)
	}
	if got != "20251205" {
		t.Errorf("got %q, want %q", got, "20251205")
	}
}

func TestChooseDatePrefix_ExplicitInvalid(t *testing.T) {
	for _, explicit := range []string{"2025-12-05", "2025120", "202512055", "abcdefgh"} {
		_, err := ChooseDatePrefix("ignored.txt", explicit, false)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("explicit %q: got err %v, want ErrInvalidDate", explicit, err)
		}
	}
}

func TestChooseDatePrefix_Mtime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	mtime := time.Date(2023, 4, 15, 10, 30, 0, 0, time.Local)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	got, err := ChooseDatePrefix(path, "", true)
	if err != nil {
		t.Fatalf("ChooseDatePrefix: %v", err)
	}
	if got != "20230415" {
		t.Errorf("got %q, want %q", got, "20230415")
	}
}

func TestChooseDatePrefix_Today(t *testing.T) {
	got, err := ChooseDatePrefix("ignored.txt", "", false)
	if err != nil {
		t.Fatalf("ChooseDatePrefix: %v", err)
	}
	want := time.Now().Format("20060102")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFindDocDate(t *testing.T) {
	cases := []struct {
		name    string
		excerpt string
		want    string
		ok      bool
	}{
		{"iso", "Invoice issued 2025-12-05 in Berlin", "20251205", true},
		{"dotted", "Rechnung vom 05.12.2025", "20251205", true},
		{"month name", "Signed on December 5, 2025 by both parties", "20251205", true},
		{"month name no comma", "Signed on December 5 2025", "20251205", true},
		{"single digit day", "March 3, 2024 meeting notes", "20240303", true},
		{"invalid calendar date", "due 2025-02-30 latest", "", false},
		{"no date", "no dates here at all", "", false},
		{"iso wins over dotted", "2024-01-02 then 05.12.2025", "20240102", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FindDocDate(tc.excerpt)
			if ok != tc.ok || got != tc.want {
				t.Errorf("FindDocDate(%q) = (%q, %v), want (%q, %v)",
					tc.excerpt, got, ok, tc.want, tc.ok)
			}
		})
	}
}

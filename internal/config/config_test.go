package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestValidate_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"bad mode", func(c *Config) { c.Mode = "rename-all" }, "invalid mode"},
		{"bad excerpt mode", func(c *Config) { c.ExcerptMode = "full" }, "invalid excerpt mode"},
		{"bad color mode", func(c *Config) { c.ColorMode = "rainbow" }, "invalid color mode"},
		{"dashed date", func(c *Config) { c.Date = "2025-12-05" }, "YYYYMMDD"},
		{"short date", func(c *Config) { c.Date = "2025120" }, "YYYYMMDD"},
		{"keep-date outside smart-title", func(c *Config) {
			c.KeepDate = true
			c.Mode = ModeDateOnly
		}, "keep-date"},
		{"zero chars", func(c *Config) { c.MaxChars = 0 }, "chars"},
		{"empty log path", func(c *Config) { c.LogPath = "" }, "log path"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestValidate_ExplicitDateOK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Date = "20251205"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
}

func TestResolveMode(t *testing.T) {
	cases := []struct {
		name    string
		flags   ModeFlags
		want    Mode
		wantErr bool
	}{
		{"default", ModeFlags{}, ModeSmartTitle, false},
		{"date-only", ModeFlags{DateOnly: true}, ModeDateOnly, false},
		{"redate", ModeFlags{Redate: true}, ModeRedate, false},
		{"keep-title", ModeFlags{KeepTitle: true}, ModeKeepTitle, false},
		{"two modes", ModeFlags{DateOnly: true, Redate: true}, "", true},
		{"three modes", ModeFlags{DateOnly: true, Redate: true, KeepTitle: true}, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.flags.ResolveMode()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveMode: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRegisterFlags_ParseIntoConfig(t *testing.T) {
	cfg := DefaultConfig()
	cmd := &cobra.Command{Use: "scanstamp", RunE: func(*cobra.Command, []string) error { return nil }}
	modes := RegisterFlags(cmd, &cfg)

	cmd.SetArgs([]string{
		"--redate", "--yes", "--suffix",
		"--chars", "400",
		"--excerpt-mode", "firstline",
		"--include", "*.pdf", "--include", "*.txt",
		"--log", "history.csv",
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	mode, err := modes.ResolveMode()
	if err != nil {
		t.Fatalf("ResolveMode: %v", err)
	}
	if mode != ModeRedate {
		t.Errorf("mode = %q, want redate", mode)
	}
	if !cfg.Yes || !cfg.Suffix {
		t.Error("bool flags not applied")
	}
	if cfg.MaxChars != 400 {
		t.Errorf("MaxChars = %d, want 400", cfg.MaxChars)
	}
	if cfg.ExcerptMode != ExcerptFirstLine {
		t.Errorf("ExcerptMode = %q, want firstline", cfg.ExcerptMode)
	}
	if len(cfg.Include) != 2 {
		t.Errorf("Include = %v, want two patterns", cfg.Include)
	}
	if cfg.LogPath != "history.csv" {
		t.Errorf("LogPath = %q", cfg.LogPath)
	}
}

func TestLoadFile_AppliesOnlyUnsetFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scanstamp.yaml")
	content := "log: from-file.csv\nchars: 900\nno_llm: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	cfg := DefaultConfig()
	cfg.MaxChars = 400 // pretend --chars was given
	changed := func(name string) bool { return name == "chars" }
	fc.Apply(&cfg, changed)

	if cfg.LogPath != "from-file.csv" {
		t.Errorf("LogPath = %q, want from-file.csv", cfg.LogPath)
	}
	if cfg.MaxChars != 400 {
		t.Errorf("MaxChars = %d, explicit flag must win over file", cfg.MaxChars)
	}
	if !cfg.NoLLM {
		t.Error("NoLLM not applied from file")
	}
}

func TestLoadFile_ExpandsEnv(t *testing.T) {
	t.Setenv("SCANSTAMP_TEST_LOG", "env-log.csv")
	dir := t.TempDir()
	path := filepath.Join(dir, "scanstamp.yaml")
	if err := os.WriteFile(path, []byte("log: ${SCANSTAMP_TEST_LOG}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if fc.Log == nil || *fc.Log != "env-log.csv" {
		t.Errorf("Log = %v, want env-log.csv", fc.Log)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

package config

// Optional YAML defaults file. Values fill Config fields only when the
// corresponding CLI flag was not set explicitly, so flags always win.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the subset of Config that may be set from a YAML
// defaults file. Pointer fields distinguish "absent" from zero values.
type FileConfig struct {
	Log         *string  `yaml:"log"`
	Report      *string  `yaml:"report"`
	Chars       *int     `yaml:"chars"`
	ExcerptMode *string  `yaml:"excerpt_mode"`
	OCR         *bool    `yaml:"ocr"`
	Suffix      *bool    `yaml:"suffix"`
	Recursive   *bool    `yaml:"recursive"`
	Include     []string `yaml:"include"`
	Exclude     []string `yaml:"exclude"`
	NoLLM       *bool    `yaml:"no_llm"`
	LocalOnly   *bool    `yaml:"local_only"`
	Color       *string  `yaml:"color"`
}

// LoadFile reads and parses a YAML defaults file. Environment variables in
// the file are expanded before parsing.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	expanded := os.ExpandEnv(string(data))

	fc := &FileConfig{}
	if err := yaml.Unmarshal([]byte(expanded), fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return fc, nil
}

// Apply copies file values into cfg for every flag the user did not set on
// the command line. flagChanged reports whether a named flag was given
// explicitly.
func (fc *FileConfig) Apply(cfg *Config, flagChanged func(name string) bool) {
	if fc.Log != nil && !flagChanged("log") {
		cfg.LogPath = *fc.Log
	}
	if fc.Report != nil && !flagChanged("report") {
		cfg.ReportPath = *fc.Report
	}
	if fc.Chars != nil && !flagChanged("chars") {
		cfg.MaxChars = *fc.Chars
	}
	if fc.ExcerptMode != nil && !flagChanged("excerpt-mode") {
		cfg.ExcerptMode = ExcerptMode(*fc.ExcerptMode)
	}
	if fc.OCR != nil && !flagChanged("ocr") {
		cfg.OCR = *fc.OCR
	}
	if fc.Suffix != nil && !flagChanged("suffix") {
		cfg.Suffix = *fc.Suffix
	}
	if fc.Recursive != nil && !flagChanged("recursive") {
		cfg.Recursive = *fc.Recursive
	}
	if len(fc.Include) > 0 && !flagChanged("include") {
		cfg.Include = fc.Include
	}
	if len(fc.Exclude) > 0 && !flagChanged("exclude") {
		cfg.Exclude = fc.Exclude
	}
	if fc.NoLLM != nil && !flagChanged("no-llm") {
		cfg.NoLLM = *fc.NoLLM
	}
	if fc.LocalOnly != nil && !flagChanged("local-only") {
		cfg.LocalOnly = *fc.LocalOnly
	}
	if fc.Color != nil && !flagChanged("color") {
		cfg.ColorMode = ColorMode(*fc.Color)
	}
}

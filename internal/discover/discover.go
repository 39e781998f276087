// Package discover expands path, directory, and glob arguments into a flat
// candidate file list, applying include/exclude filters.
//
// No renaming or mutation is allowed here.
package discover

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Files expands roots (files, directories, or glob patterns) into the list
// of candidate files. Exclude patterns are checked first; a non-empty
// include list must then match. Non-existent and non-regular entries are
// silently dropped. The result is sorted for deterministic processing.
func Files(roots []string, recursive bool, include, exclude []string) []string {
	var out []string
	for _, root := range roots {
		out = append(out, expand(root, recursive, include, exclude)...)
	}
	sort.Strings(out)
	return out
}

// expand handles a single root argument. Glob patterns are expanded
// relative to the current directory and each match is re-fed through the
// same rules.
func expand(root string, recursive bool, include, exclude []string) []string {
	if strings.ContainsAny(root, "*?[") {
		matches, err := filepath.Glob(root)
		if err != nil {
			return nil
		}
		var out []string
		for _, m := range matches {
			out = append(out, expand(m, recursive, include, exclude)...)
		}
		return out
	}

	fi, err := os.Stat(root)
	if err != nil {
		return nil
	}

	if fi.IsDir() {
		if recursive {
			return walkDir(root, include, exclude)
		}
		return listDir(root, include, exclude)
	}

	if !fi.Mode().IsRegular() || !passesFilters(root, include, exclude) {
		return nil
	}
	// Direct file arguments arrive as typed (e.g. "./scan.txt"); clean them
	// so downstream path comparisons see the same form Join and Glob produce.
	return []string{filepath.Clean(root)}
}

// walkDir collects every regular file in the subtree rooted at dir.
// Per-entry walk errors drop the entry rather than aborting discovery.
func walkDir(dir string, include, exclude []string) []string {
	var out []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if passesFilters(path, include, exclude) {
			out = append(out, path)
		}
		return nil
	})
	return out
}

// listDir collects the immediate regular-file children of dir.
func listDir(dir string, include, exclude []string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if passesFilters(path, include, exclude) {
			out = append(out, path)
		}
	}
	return out
}

// passesFilters applies exclude-then-include semantics. An empty include
// list means "include everything".
func passesFilters(path string, include, exclude []string) bool {
	if len(exclude) > 0 && matchesAny(path, exclude) {
		return false
	}
	if len(include) > 0 && !matchesAny(path, include) {
		return false
	}
	return true
}

// matchesAny reports whether any pattern matches the basename or the full
// path. Testing both gives flexible matching without platform surprises.
// Malformed patterns simply never match.
func matchesAny(path string, patterns []string) bool {
	base := filepath.Base(path)
	for _, pat := range patterns {
		if ok, err := filepath.Match(pat, base); err == nil && ok {
			return true
		}
		if ok, err := filepath.Match(pat, path); err == nil && ok {
			return true
		}
	}
	return false
}

// Package naming provides date-prefix detection, date selection, title
// sanitization, and target filename construction.
//
// Everything here is deterministic string logic; the only filesystem access
// is the mtime lookup in [ChooseDatePrefix]. Keeping this code isolated
// enables reliable unit testing.
package naming

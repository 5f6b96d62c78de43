package parser

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FileKind is the handler a selected file is routed to.
type FileKind string

const (
	KindLog     FileKind = "log"
	KindCSV     FileKind = "csv"
	KindProfile FileKind = "profile"
	KindUnknown FileKind = "unknown"
)

// Classify routes a path by substrings of its base name. "log" wins over
// "csv", which wins over "profile".
func Classify(path string) FileKind {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.Contains(name, "log"):
		return KindLog
	case strings.Contains(name, "csv"):
		return KindCSV
	case strings.Contains(name, "profile"):
		return KindProfile
	default:
		return KindUnknown
	}
}

// Selection is a set of expanded paths grouped by kind, in sorted order.
type Selection struct {
	Logs     []string
	CSV      []string
	Profiles []string
	Unknown  []string
}

// Select expands patterns and groups the resulting paths by Classify.
func Select(patterns []string) (*Selection, error) {
	paths, err := ExpandGlobs(patterns)
	if err != nil {
		return nil, err
	}
	sel := &Selection{}
	for _, p := range paths {
		switch Classify(p) {
		case KindLog:
			sel.Logs = append(sel.Logs, p)
		case KindCSV:
			sel.CSV = append(sel.CSV, p)
		case KindProfile:
			sel.Profiles = append(sel.Profiles, p)
		default:
			sel.Unknown = append(sel.Unknown, p)
		}
	}
	return sel, nil
}

// ExpandGlobs expands file paths and glob patterns into a sorted,
// deduplicated list. A pattern with no match is kept literally so the open
// that follows reports the missing file.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			add(pattern)
			continue
		}
		for _, m := range matches {
			add(m)
		}
	}

	sort.Strings(result)
	return result, nil
}

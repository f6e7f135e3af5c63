package discovery

import (
	"path/filepath"
	"strings"

	"btr/internal/domain"
)

// Filter narrows candidates by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps candidates whose name matches the pattern.
// Supports patterns like "math_*" or "*render*"; a pattern without wildcards is a substring match.
func (f *Filter) FilterByName(candidates []domain.Candidate, pattern string) []domain.Candidate {
	if pattern == "" {
		return candidates
	}

	var filtered []domain.Candidate
	for _, c := range candidates {
		if matchName(c.Name, pattern) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// filepath.Match is anchored; fall back to requiring every literal segment in order
	if strings.Contains(pattern, "?") {
		return false
	}
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
		found = true
	}
	return found
}

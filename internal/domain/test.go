package domain

import "path/filepath"

// Candidate represents a file believed to be a compiled test binary
type Candidate struct {
	Path string // Absolute, cleaned path to the binary
	Name string // Just the filename
}

// NewCandidate builds a Candidate from a path, deriving its display name
func NewCandidate(path string) Candidate {
	return Candidate{
		Path: path,
		Name: filepath.Base(path),
	}
}

// TestCase represents a single GoogleTest case inside a test binary
type TestCase struct {
	Suite string
	Name  string
}

// FullName returns the case as GoogleTest prints it (Suite.Name)
func (tc TestCase) FullName() string {
	return tc.Suite + "." + tc.Name
}

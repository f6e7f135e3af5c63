package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"btr/internal/domain"

	"github.com/phuslu/log"
)

// Scanner finds test binaries in a build configuration directory
type Scanner struct {
	suffix     string
	extensions []string
	logger     *log.Logger
}

// NewScanner creates a new Scanner matching names that end with suffix,
// optionally followed by one of the executable extensions
func NewScanner(suffix string, extensions []string, logger *log.Logger) *Scanner {
	return &Scanner{
		suffix:     suffix,
		extensions: extensions,
		logger:     logger,
	}
}

// Scan lists the candidates directly inside baseDir/label.
// A missing directory yields no candidates and no error.
func (s *Scanner) Scan(baseDir, label string) ([]domain.Candidate, error) {
	searchDir := filepath.Join(baseDir, label)

	// ENOTDIR means a parent of the search dir is a file, so the dir is absent too
	if _, err := os.Stat(searchDir); errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		s.logger.Debug().Str("dir", searchDir).Msg("search directory does not exist")
		return nil, nil
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list test directory %s: %w", searchDir, err)
	}

	var candidates []domain.Candidate
	for _, entry := range entries {
		// Not recursive: nested directories are never searched
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !s.Matches(name) {
			s.logger.Debug().Str("file", name).Msg("skipping non-test file")
			continue
		}

		path := filepath.Join(searchDir, name)
		if entry.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				s.logger.Debug().Str("file", name).Msg("skipping symlink to directory")
				continue
			}
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		candidates = append(candidates, domain.NewCandidate(path))
	}

	s.logger.Debug().Str("dir", searchDir).Int("candidates", len(candidates)).Msg("scanned test directory")
	return candidates, nil
}

// Matches reports whether a filename carries the test-binary suffix
func (s *Scanner) Matches(name string) bool {
	if s.suffix == "" {
		return false
	}
	if strings.HasSuffix(name, s.suffix) {
		return true
	}
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, s.suffix+ext) {
			return true
		}
	}
	return false
}

// Package discovery finds deck files under a directory tree.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"swipedeck/internal/deck"
)

// DefaultMaxDepth limits how deep a scan descends below its root
const DefaultMaxDepth = 5

// ErrNoDecks is returned by Resolve when a directory holds no deck files
var ErrNoDecks = errors.New("no deck files found")

// ErrAmbiguous is returned by Resolve when a directory holds several decks
var ErrAmbiguous = errors.New("several deck files found")

var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"__pycache__":  true,
	"venv":         true,
}

// Scanner walks directories looking for deck files
type Scanner struct {
	MaxDepth int
	logger   *zap.Logger
}

// NewScanner creates a scanner with the default depth limit
func NewScanner(logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{MaxDepth: DefaultMaxDepth, logger: logger}
}

// Scan returns every deck file under root, sorted by path. Unreadable
// entries are logged and skipped.
func (s *Scanner) Scan(ctx context.Context, root string) ([]string, error) {
	var found []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			if path == root {
				return err
			}
			s.logger.Debug("skipping unreadable path", zap.String("path", path), zap.Error(err))
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			rel, _ := filepath.Rel(root, path)
			if strings.Count(rel, string(filepath.Separator)) >= s.MaxDepth {
				return fs.SkipDir
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || skipDirs[name] {
				return fs.SkipDir
			}
			return nil
		}

		if _, err := deck.FormatForPath(path); err == nil {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Strings(found)
	s.logger.Debug("scan finished", zap.String("root", root), zap.Int("decks", len(found)))
	return found, nil
}

// Resolve turns a command line argument into one deck path. Files are
// returned as given; a directory must contain exactly one deck.
func (s *Scanner) Resolve(ctx context.Context, arg string) (string, error) {
	info, err := os.Stat(arg)
	if err != nil || !info.IsDir() {
		return arg, nil
	}

	found, err := s.Scan(ctx, arg)
	if err != nil {
		return "", err
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%s: %w", arg, ErrNoDecks)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%s: %w: %s", arg, ErrAmbiguous, strings.Join(found, ", "))
	}
}

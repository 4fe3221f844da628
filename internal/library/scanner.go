package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ytget/mp3-player/internal/model"
)

// Scanner walks a directory tree once and builds a library
type Scanner struct {
	root       string
	extensions map[string]bool
	logger     *zap.Logger
}

// NewScanner creates a scanner for root. Extensions are matched
// case-insensitively and must include the leading dot.
func NewScanner(root string, extensions []string, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = true
	}
	return &Scanner{
		root:       root,
		extensions: exts,
		logger:     logger.Named("library"),
	}
}

// IsPlayable reports whether the file extension is in the playable set
func (s *Scanner) IsPlayable(path string) bool {
	return s.extensions[strings.ToLower(filepath.Ext(path))]
}

// Scan enumerates every file under the root exactly once. A missing root
// yields an empty library, not an error.
func (s *Scanner) Scan(ctx context.Context) (*model.Library, error) {
	absRoot, err := filepath.Abs(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve library root %s: %w", s.root, err)
	}

	lib := model.NewLibrary(absRoot)

	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Library directory does not exist", zap.String("root", absRoot))
			return lib, nil
		}
		return nil, fmt.Errorf("failed to stat library root: %w", err)
	}
	if !info.IsDir() {
		s.logger.Warn("Library root is not a directory", zap.String("root", absRoot))
		return lib, nil
	}

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			s.logger.Warn("Skipping unreadable path", zap.String("path", path), zap.Error(walkErr))
			if d != nil && d.IsDir() && path != absRoot {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			rel = d.Name()
		}

		track := model.NewTrack(path, rel)
		track.Supported = s.IsPlayable(path)
		lib.AddTrack(track)

		if !track.Supported {
			s.logger.Debug("Unsupported file", zap.String("path", track.RelPath))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for name, paths := range lib.Collisions() {
		s.logger.Warn("Duplicate file name in library",
			zap.String("name", name),
			zap.Strings("paths", paths))
	}

	s.logger.Info("Library scan complete",
		zap.String("root", absRoot),
		zap.Int("files", len(lib.Files())),
		zap.Int("tracks", lib.Len()),
		zap.Int("unsupported", len(lib.Unsupported())))

	return lib, nil
}

package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/IvanShishkin/collider/internal/config"
	"github.com/IvanShishkin/collider/internal/patterns"
	"github.com/IvanShishkin/collider/pkg/models"
	"go.uber.org/zap"
)

// Root validation errors
var (
	ErrRootNotFound     = errors.New("root directory does not exist")
	ErrRootNotDirectory = errors.New("root path is not a directory")
)

// Walker walks the filesystem and finds files to hash
type Walker struct {
	config  *config.Config
	logger  *zap.Logger
	exclude map[string]bool
	visited int
}

// NewWalker creates a new filesystem walker
func NewWalker(cfg *config.Config, logger *zap.Logger) *Walker {
	// Build exclude map for fast lookup
	exclude := make(map[string]bool)
	for _, dir := range cfg.Exclude {
		exclude[strings.ToLower(dir)] = true
	}

	return &Walker{
		config:  cfg,
		logger:  logger,
		exclude: exclude,
	}
}

// ValidateRoot checks that root exists and is a directory
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %w: %s", config.ErrInvalidConfig, ErrRootNotFound, root)
		}
		return fmt.Errorf("%w: cannot access %s: %w", config.ErrInvalidConfig, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %w: %s", config.ErrInvalidConfig, ErrRootNotDirectory, root)
	}
	return nil
}

// Walk recursively walks root and calls fn for every regular file accepted by
// matcher. Candidates are numbered in discovery order.
func (w *Walker) Walk(ctx context.Context, root string, matcher *patterns.Matcher, fn func(*models.CandidateFile) error) error {
	if err := ValidateRoot(root); err != nil {
		return err
	}

	// WalkDir does not descend into a symlinked root
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve %s: %w", config.ErrInvalidConfig, root, err)
	}

	w.visited = 0
	seq := 0

	return filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() && path != walkRoot {
				return filepath.SkipDir
			}
			return nil // Continue walking
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if path != walkRoot && w.exclude[strings.ToLower(d.Name())] {
				w.logger.Debug("Skipping excluded directory", zap.String("path", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		w.visited++

		lowerName := strings.ToLower(d.Name())
		if !matcher.Matches(lowerName) {
			return nil
		}

		var size int64
		if info, err := d.Info(); err == nil {
			size = info.Size()
		}

		// Reported paths keep the root as given
		walkedPath := filepath.Clean(path)
		relPath, err := filepath.Rel(walkRoot, path)
		if err != nil {
			relPath = ""
		} else {
			walkedPath = filepath.Join(root, relPath)
		}

		candidate := &models.CandidateFile{
			Path:         walkedPath,
			RelativePath: relPath,
			LowerName:    lowerName,
			Resource:     resourceFromRel(relPath),
			Size:         size,
			Seq:          seq,
		}
		seq++

		return fn(candidate)
	})
}

// Visited returns the number of regular files seen by the last walk
func (w *Walker) Visited() int {
	return w.visited
}

// ResourceName returns the top-level directory of path under root
func ResourceName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return models.ResourceUnknown
	}
	return resourceFromRel(rel)
}

func resourceFromRel(rel string) string {
	if rel == "" || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return models.ResourceUnknown
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	if len(parts) == 1 {
		return models.ResourceRoot
	}
	return parts[0]
}

// GetExtension returns the upper-cased extension with its dot, or "" when there is none.
// Leading dots belong to the name, so ".ymap" has no extension.
func GetExtension(name string) string {
	base := strings.TrimLeft(filepath.Base(name), ".")
	return strings.ToUpper(filepath.Ext(base))
}

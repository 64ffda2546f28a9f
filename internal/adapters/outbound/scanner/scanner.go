package scanner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/abdidvp/fixspot/internal/domain"
)

const maxReadSize = 512 * 1024 // 512KB cap for candidate files.

// FileScanner implements domain.FileLister, domain.FileLoader and
// domain.SourceStore on the local filesystem.
type FileScanner struct {
	logger *slog.Logger
}

func New() *FileScanner {
	return &FileScanner{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger sets the logger that reports skipped candidate files.
func (s *FileScanner) WithLogger(logger *slog.Logger) *FileScanner {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// ListFiles walks projectPath and returns slash-separated relative paths of
// files whose extension is configured, skipping dependency and build dirs.
func (s *FileScanner) ListFiles(projectPath string, cfg domain.ProjectConfig) ([]string, error) {
	cfg = cfg.WithDefaults()
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	var files []string
	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, _ := filepath.Rel(absPath, path)
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if path != absPath && (domain.SkippedDirs[d.Name()] || cfg.IsExcluded(relPath)) {
				return filepath.SkipDir
			}
			return nil
		}
		if cfg.IsExcluded(relPath) || !cfg.HasExtension(relPath) {
			return nil
		}
		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// LoadFiles reads paths relative to projectPath using at most workers
// goroutines. Files larger than the read cap are truncated. A file that
// cannot be read, such as one still in the git index but deleted from the
// worktree, is skipped with a warning. Result order follows paths.
func (s *FileScanner) LoadFiles(ctx context.Context, projectPath string, paths []string, workers int) ([]domain.Candidate, error) {
	if len(paths) == 0 {
		return []domain.Candidate{}, nil
	}
	if workers <= 0 {
		workers = domain.DefaultWorkers
	}

	loaded := make([]*domain.Candidate, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, len(paths)))

	for i, rel := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			content, err := readCapped(filepath.Join(projectPath, filepath.FromSlash(rel)))
			if err != nil {
				s.logger.Warn("skipping unreadable file", "path", rel, "error", err)
				return nil
			}
			loaded[i] = &domain.Candidate{Path: rel, Content: content}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.Candidate, 0, len(paths))
	for _, c := range loaded {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func readCapped(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) > maxReadSize {
		data = data[:maxReadSize]
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

func (s *FileScanner) ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// WriteSource replaces the file at path, keeping its permissions when it
// already exists.
func (s *FileScanner) WriteSource(path, content string) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

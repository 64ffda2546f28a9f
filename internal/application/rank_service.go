package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdidvp/fixspot/internal/domain"
	"github.com/abdidvp/fixspot/internal/domain/confidence"
	"github.com/abdidvp/fixspot/internal/domain/extract"
)

// RankService orders a project's files by how likely each one holds the
// original markup:
// load config → list files (git index or walk) → load concurrently → rank.
type RankService struct {
	configLoader domain.ConfigLoader
	repo         domain.RepoInspector
	tracked      domain.FileLister
	walker       domain.FileLister
	loader       domain.FileLoader
	logger       *slog.Logger
}

func NewRankService(
	configLoader domain.ConfigLoader,
	repo domain.RepoInspector,
	tracked domain.FileLister,
	walker domain.FileLister,
	loader domain.FileLoader,
	logger *slog.Logger,
) *RankService {
	return &RankService{
		configLoader: configLoader,
		repo:         repo,
		tracked:      tracked,
		walker:       walker,
		loader:       loader,
		logger:       orDiscard(logger),
	}
}

// RankProject ranks the candidate files under root. An empty text uses the
// original's text content. A limit of zero or less uses the configured
// max_candidates.
func (s *RankService) RankProject(ctx context.Context, root, original, text string, limit int) ([]domain.RankedFile, error) {
	cfg, err := s.configLoader.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paths, err := s.listFiles(root, cfg)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	s.logger.Debug("candidate files listed", "root", root, "count", len(paths))

	candidates, err := s.loader.LoadFiles(ctx, root, paths, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("loading files: %w", err)
	}

	if text == "" {
		text = extract.TextContent(original)
	}
	ranked := confidence.Rank(candidates, original, text)

	if limit <= 0 {
		limit = cfg.MaxCandidates
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (s *RankService) listFiles(root string, cfg domain.ProjectConfig) ([]string, error) {
	if s.repo != nil && s.tracked != nil && s.repo.IsGitRepo(root) {
		paths, err := s.tracked.ListFiles(root, cfg)
		if err == nil {
			return paths, nil
		}
		s.logger.Warn("git listing failed, walking filesystem", "root", root, "error", err)
	}
	return s.walker.ListFiles(root, cfg)
}

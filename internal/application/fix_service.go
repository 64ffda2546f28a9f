package application

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/abdidvp/fixspot/internal/domain"
	"github.com/abdidvp/fixspot/internal/domain/dialect"
	"github.com/abdidvp/fixspot/internal/domain/locate"
)

// ApplyRequest describes one substitution. A positive LineStart selects the
// line-range path; otherwise the original markup is searched for.
type ApplyRequest struct {
	Source    string
	Original  string
	Fixed     string
	LineStart int
	LineEnd   int
}

// FileApplyOutcome is the result of applying a fix to a file on disk.
type FileApplyOutcome struct {
	Path    string             `json:"path"`
	Result  domain.ApplyResult `json:"result"`
	Patch   string             `json:"patch,omitempty"`
	Commit  string             `json:"commit,omitempty"`
	Written bool               `json:"written"`
}

// FixService locates fix regions and applies fixed markup to sources.
type FixService struct {
	sources     domain.SourceStore
	patches     domain.PatchRenderer
	repo        domain.RepoInspector
	diffContext int
	logger      *slog.Logger
}

func NewFixService(sources domain.SourceStore, patches domain.PatchRenderer, logger *slog.Logger) *FixService {
	return &FixService{
		sources:     sources,
		patches:     patches,
		diffContext: domain.DefaultDiffContext,
		logger:      orDiscard(logger),
	}
}

// WithRepo records the HEAD commit of the file's repository on applied
// outcomes, so a patch can be matched to the tree it was computed against.
func (s *FixService) WithRepo(repo domain.RepoInspector) *FixService {
	s.repo = repo
	return s
}

// WithDiffContext sets the number of context lines in previews.
func (s *FixService) WithDiffContext(n int) *FixService {
	if n > 0 {
		s.diffContext = n
	}
	return s
}

// Locate finds the region of source holding original. A non-empty selector
// contributes its class tokens to the search. It returns nil when no
// strategy matches.
func (s *FixService) Locate(source, original, text, selector string) *domain.CodeLocation {
	q := locate.NewQuery(original, text).WithSelector(selector)
	loc := locate.Find(source, q)
	if loc == nil {
		s.logger.Debug("no location found", "text", text)
		return nil
	}
	s.logger.Debug("location found",
		"line_start", loc.LineStart,
		"line_end", loc.LineEnd,
		"confidence", loc.Confidence,
		"instances", len(loc.AllInstances),
	)
	return loc
}

// LocateFile reads path and locates original inside it.
func (s *FixService) LocateFile(path, original, text, selector string) (*domain.CodeLocation, error) {
	source, err := s.sources.ReadSource(path)
	if err != nil {
		return nil, err
	}
	return s.Locate(source, original, text, selector), nil
}

// Apply substitutes the fixed markup into req.Source.
func (s *FixService) Apply(req ApplyRequest) (domain.ApplyResult, error) {
	if req.LineStart > 0 {
		end := req.LineEnd
		if end == 0 {
			end = req.LineStart
		}
		result, err := dialect.ReplaceLines(req.Source, req.LineStart, end, req.Fixed)
		if err != nil {
			return domain.ApplyResult{}, fmt.Errorf("replacing lines %d-%d: %w", req.LineStart, end, err)
		}
		return result, nil
	}

	result := dialect.Apply(req.Source, req.Original, req.Fixed)
	if !result.Applied {
		s.logger.Warn("fix not applied", "matches", result.Matches)
	} else {
		s.logger.Debug("fix applied", "method", result.Method)
	}
	return result, nil
}

// ApplyFile applies req to the file at path, whose content replaces
// req.Source. The file is rewritten only when write is set and the fix was
// applied.
func (s *FixService) ApplyFile(path string, req ApplyRequest, write bool) (FileApplyOutcome, error) {
	source, err := s.sources.ReadSource(path)
	if err != nil {
		return FileApplyOutcome{}, err
	}
	req.Source = source

	result, err := s.Apply(req)
	if err != nil {
		return FileApplyOutcome{}, err
	}

	out := FileApplyOutcome{Path: path, Result: result}
	if !result.Applied {
		return out, nil
	}
	out.Patch = s.Preview(path, source, result.Content)
	out.Commit = s.baseCommit(path)

	if write && result.Content != source {
		if err := s.sources.WriteSource(path, result.Content); err != nil {
			return FileApplyOutcome{}, err
		}
		out.Written = true
		s.logger.Info("fix written", "path", path, "method", result.Method)
	}
	return out, nil
}

func (s *FixService) baseCommit(path string) string {
	if s.repo == nil {
		return ""
	}
	dir := filepath.Dir(path)
	if !s.repo.IsGitRepo(dir) {
		return ""
	}
	hash, err := s.repo.CommitHash(dir)
	if err != nil {
		s.logger.Debug("no base commit", "path", path, "error", err)
		return ""
	}
	return hash
}

// Preview renders a unified patch from before to after.
func (s *FixService) Preview(path, before, after string) string {
	return s.patches.Unified(path, before, after, s.diffContext)
}

// Transform converts fixed markup to the JSX dialect.
func (s *FixService) Transform(fixed string) string {
	return dialect.ToJSX(fixed)
}

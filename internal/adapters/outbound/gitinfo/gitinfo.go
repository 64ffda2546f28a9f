package gitinfo

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/abdidvp/fixspot/internal/domain"
)

var repoURLRe = regexp.MustCompile(`[:/]([^/:]+)/([^/]+?)(?:\.git)?/?$`)

// GitInfoAdapter reads repository facts with go-git. It implements
// domain.RepoInspector and domain.FileLister over the files tracked in the
// git index.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func open(projectPath string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{DetectDotGit: true})
}

func (g *GitInfoAdapter) IsGitRepo(projectPath string) bool {
	_, err := open(projectPath)
	return err == nil
}

// CommitHash returns the full hash of the commit HEAD points to.
func (g *GitInfoAdapter) CommitHash(projectPath string) (string, error) {
	repo, err := open(projectPath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// ListFiles returns the tracked files under projectPath, relative to it,
// filtered like the filesystem walk: skipped dirs, exclude paths, extensions.
func (g *GitInfoAdapter) ListFiles(projectPath string, cfg domain.ProjectConfig) ([]string, error) {
	cfg = cfg.WithDefaults()
	repo, err := open(projectPath)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}
	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}

	prefix, err := subdirPrefix(wt.Filesystem.Root(), projectPath)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range idx.Entries {
		if !strings.HasPrefix(e.Name, prefix) {
			continue
		}
		rel := strings.TrimPrefix(e.Name, prefix)
		if domain.InSkippedDir(rel) || cfg.IsExcluded(rel) || !cfg.HasExtension(rel) {
			continue
		}
		files = append(files, rel)
	}
	sort.Strings(files)
	return files, nil
}

// Origin returns the owner and repository name of the "origin" remote.
func (g *GitInfoAdapter) Origin(projectPath string) (domain.RepoPreference, error) {
	repo, err := open(projectPath)
	if err != nil {
		return domain.RepoPreference{}, fmt.Errorf("opening git repo: %w", err)
	}
	remote, err := repo.Remote("origin")
	if err != nil {
		return domain.RepoPreference{}, fmt.Errorf("getting origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return domain.RepoPreference{}, fmt.Errorf("origin remote has no URL")
	}
	pref, ok := ParseRepoURL(urls[0])
	if !ok {
		return domain.RepoPreference{}, fmt.Errorf("cannot parse owner/repo from %q", urls[0])
	}
	return pref, nil
}

// ParseRepoURL extracts owner/repo from https, ssh or scp-style remote URLs.
func ParseRepoURL(url string) (domain.RepoPreference, bool) {
	m := repoURLRe.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil {
		return domain.RepoPreference{}, false
	}
	return domain.RepoPreference{Owner: m[1], Repo: m[2]}, true
}

// subdirPrefix returns projectPath relative to root as an index path prefix
// ("" for the root itself, "web/" for a subdirectory).
func subdirPrefix(root, projectPath string) (string, error) {
	absRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", err
	}
	absProject, err := filepath.Abs(projectPath)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(absProject); err == nil {
		absProject = resolved
	}
	rel, err := filepath.Rel(absRoot, absProject)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel) + "/", nil
}

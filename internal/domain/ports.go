package domain

import "context"

// PreferenceStore persists the domain -> repository mapping.
// Get returns (RepoPreference{}, false, nil) when no preference exists.
type PreferenceStore interface {
	Get(host string) (RepoPreference, bool, error)
	Set(host string, pref RepoPreference) error
	List() (map[string]RepoPreference, error)
}

// ConfigLoader loads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// FileLister lists candidate source files under a project root, relative to it.
type FileLister interface {
	ListFiles(projectPath string, cfg ProjectConfig) ([]string, error)
}

// FileLoader reads candidate file contents.
type FileLoader interface {
	LoadFiles(ctx context.Context, projectPath string, paths []string, workers int) ([]Candidate, error)
}

// PatchRenderer renders a reviewable diff between two versions of a file.
type PatchRenderer interface {
	Unified(path, before, after string, context int) string
}

// SourceStore reads and writes individual source files.
type SourceStore interface {
	ReadSource(path string) (string, error)
	WriteSource(path, content string) error
}

// RepoInspector answers questions about the git repository containing a path.
type RepoInspector interface {
	IsGitRepo(projectPath string) bool
	Origin(projectPath string) (RepoPreference, error)
	CommitHash(projectPath string) (string, error)
}

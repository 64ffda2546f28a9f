package domain

import (
	"fmt"
	"strings"
)

// DefaultExtensions lists the source file extensions considered when ranking
// candidate files for a fix.
var DefaultExtensions = []string{
	".jsx", ".tsx", ".js", ".ts", ".html", ".vue", ".svelte", ".astro", ".mdx",
}

// SkippedDirs are dependency and build output directories never searched
// for candidate files.
var SkippedDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	".next":        true,
	".nuxt":        true,
	".svelte-kit":  true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	"bin":          true,
}

// InSkippedDir reports whether any directory segment of a slash-separated
// relative path is in SkippedDirs.
func InSkippedDir(relPath string) bool {
	parts := strings.Split(relPath, "/")
	for _, dir := range parts[:len(parts)-1] {
		if SkippedDirs[dir] {
			return true
		}
	}
	return false
}

const (
	DefaultMaxCandidates = 20
	DefaultWorkers       = 8
	DefaultDiffContext   = 3
)

// ProjectConfig holds project-level configuration loaded from .fixspot.yaml.
type ProjectConfig struct {
	Extensions      []string `yaml:"extensions"       json:"extensions,omitempty"`
	ExcludePaths    []string `yaml:"exclude_paths"    json:"exclude_paths,omitempty"`
	MaxCandidates   int      `yaml:"max_candidates"   json:"max_candidates,omitempty"`
	Workers         int      `yaml:"workers"          json:"workers,omitempty"`
	DiffContext     int      `yaml:"diff_context"     json:"diff_context,omitempty"`
	PreferencesFile string   `yaml:"preferences_file" json:"preferences_file,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Extensions:    append([]string(nil), DefaultExtensions...),
		MaxCandidates: DefaultMaxCandidates,
		Workers:       DefaultWorkers,
		DiffContext:   DefaultDiffContext,
	}
}

// WithDefaults fills zero-valued fields from DefaultConfig.
// Explicit (non-zero) values always win.
func (c ProjectConfig) WithDefaults() ProjectConfig {
	d := DefaultConfig()
	if len(c.Extensions) == 0 {
		c.Extensions = d.Extensions
	}
	if c.MaxCandidates == 0 {
		c.MaxCandidates = d.MaxCandidates
	}
	if c.Workers == 0 {
		c.Workers = d.Workers
	}
	if c.DiffContext == 0 {
		c.DiffContext = d.DiffContext
	}
	return c
}

// HasExtension reports whether path ends with one of the configured extensions.
func (c ProjectConfig) HasExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range c.Extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// IsExcluded reports whether a slash-separated relative path falls under one
// of the configured exclude paths.
func (c ProjectConfig) IsExcluded(relPath string) bool {
	for _, p := range c.ExcludePaths {
		p = strings.Trim(p, "/")
		if p == "" {
			continue
		}
		if relPath == p || strings.HasPrefix(relPath, p+"/") {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	if c.MaxCandidates < 0 {
		return fmt.Errorf("max_candidates must be >= 0 (got %d)", c.MaxCandidates)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", c.Workers)
	}
	if c.DiffContext < 0 {
		return fmt.Errorf("diff_context must be >= 0 (got %d)", c.DiffContext)
	}
	return nil
}

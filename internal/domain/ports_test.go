package domain_test

import (
	"github.com/abdidvp/fixspot/internal/adapters/outbound/config"
	"github.com/abdidvp/fixspot/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/fixspot/internal/adapters/outbound/patch"
	"github.com/abdidvp/fixspot/internal/adapters/outbound/preferences"
	"github.com/abdidvp/fixspot/internal/adapters/outbound/scanner"
	"github.com/abdidvp/fixspot/internal/domain"
)

// Adapters must keep satisfying the ports they are wired to.
var (
	_ domain.ConfigLoader    = (*config.YAMLLoader)(nil)
	_ domain.FileLister      = (*scanner.FileScanner)(nil)
	_ domain.FileLister      = (*gitinfo.GitInfoAdapter)(nil)
	_ domain.FileLoader      = (*scanner.FileScanner)(nil)
	_ domain.SourceStore     = (*scanner.FileScanner)(nil)
	_ domain.RepoInspector   = (*gitinfo.GitInfoAdapter)(nil)
	_ domain.PatchRenderer   = (*patch.Renderer)(nil)
	_ domain.PreferenceStore = (*preferences.FileStore)(nil)
	_ domain.PreferenceStore = (*preferences.Memory)(nil)
)

package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/fixspot/internal/adapters/outbound/config"
	"github.com/abdidvp/fixspot/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/fixspot/internal/adapters/outbound/patch"
	"github.com/abdidvp/fixspot/internal/adapters/outbound/scanner"
	"github.com/abdidvp/fixspot/internal/application"
	"github.com/abdidvp/fixspot/internal/domain"
)

// services bundles the application services shared by tools and resources.
type services struct {
	projectPath string
	fix         *application.FixService
	rank        *application.RankService
	prefs       *application.PreferenceService
}

// NewFixspotMCPServer creates a new MCP server with all fixspot tools and
// resources registered. Relative file arguments resolve against
// projectPath; preferences are read and written through store.
func NewFixspotMCPServer(projectPath string, store domain.PreferenceStore, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"fixspot",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	sc := scanner.New().WithLogger(logger)
	gi := gitinfo.New()
	svc := &services{
		projectPath: projectPath,
		fix:         application.NewFixService(sc, patch.New(), logger).WithRepo(gi),
		rank:        application.NewRankService(config.New(), gi, gi, sc, sc, logger),
		prefs:       application.NewPreferenceService(store, gi, logger),
	}
	if cfg, err := config.New().Load(projectPath); err == nil {
		svc.fix.WithDiffContext(cfg.DiffContext)
	}

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}

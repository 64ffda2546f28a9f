package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/fixspot/internal/adapters/outbound/config"
	"github.com/abdidvp/fixspot/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/fixspot/internal/adapters/outbound/patch"
	"github.com/abdidvp/fixspot/internal/adapters/outbound/preferences"
	"github.com/abdidvp/fixspot/internal/adapters/outbound/scanner"
	"github.com/abdidvp/fixspot/internal/application"
	"github.com/abdidvp/fixspot/internal/domain"
)

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func loadConfig(projectPath string) (domain.ProjectConfig, error) {
	cfg, err := config.New().Load(projectPath)
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newFixService(cmd *cobra.Command) (*application.FixService, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, err
	}
	svc := application.NewFixService(scanner.New(), patch.New(), newLogger(cmd)).WithRepo(gitinfo.New())
	return svc.WithDiffContext(cfg.DiffContext), nil
}

func newRankService(cmd *cobra.Command) *application.RankService {
	logger := newLogger(cmd)
	s := scanner.New().WithLogger(logger)
	gi := gitinfo.New()
	return application.NewRankService(config.New(), gi, gi, s, s, logger)
}

// newPreferenceStore resolves the preferences file from --prefs, then the
// project config, then the default location.
func newPreferenceStore(cmd *cobra.Command, projectPath string) (*preferences.FileStore, error) {
	if path, _ := cmd.Flags().GetString("prefs"); path != "" {
		return preferences.New(path), nil
	}
	cfg, err := loadConfig(projectPath)
	if err != nil {
		return nil, err
	}
	return preferences.New(cfg.PreferencesFile), nil
}

func newPreferenceService(cmd *cobra.Command) (*application.PreferenceService, error) {
	store, err := newPreferenceStore(cmd, ".")
	if err != nil {
		return nil, err
	}
	return application.NewPreferenceService(store, gitinfo.New(), newLogger(cmd)), nil
}

// readMarkup returns arg itself, or the contents of a file when arg is
// "@path". "@-" reads standard input.
func readMarkup(cmd *cobra.Command, arg string) (string, error) {
	name, ok := strings.CutPrefix(arg, "@")
	if !ok {
		return arg, nil
	}
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("reading markup from %s: %w", arg, err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// parseLines parses "12" or "12-15" into a 1-based inclusive range.
func parseLines(s string) (start, end int, err error) {
	from, to, found := strings.Cut(s, "-")
	start, err = strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --lines %q: %w", s, err)
	}
	end = start
	if found {
		end, err = strconv.Atoi(strings.TrimSpace(to))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --lines %q: %w", s, err)
		}
	}
	if start < 1 || end < start {
		return 0, 0, fmt.Errorf("invalid --lines %q: want START or START-END with 1 <= START <= END", s)
	}
	return start, end, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

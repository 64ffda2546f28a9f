package application

import (
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"

	"github.com/abdidvp/fixspot/internal/domain"
)

// PreferenceService remembers which repository holds the source of a
// scanned site, keyed by the site's hostname.
type PreferenceService struct {
	store  domain.PreferenceStore
	repo   domain.RepoInspector
	logger *slog.Logger
}

func NewPreferenceService(store domain.PreferenceStore, repo domain.RepoInspector, logger *slog.Logger) *PreferenceService {
	return &PreferenceService{store: store, repo: repo, logger: orDiscard(logger)}
}

// HostOf returns the lower-cased hostname of a scanned URL without its
// port. A bare host ("example.com") is accepted. A "www." prefix is kept.
func HostOf(scanURL string) (string, error) {
	raw := strings.TrimSpace(scanURL)
	if raw == "" {
		return "", fmt.Errorf("empty URL")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", scanURL, err)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", fmt.Errorf("URL %q has no host", scanURL)
	}
	return host, nil
}

// Lookup returns the remembered repository for the scanned URL. Store
// failures are logged and reported as no preference.
func (s *PreferenceService) Lookup(scanURL string) (domain.RepoPreference, bool) {
	host, err := HostOf(scanURL)
	if err != nil {
		s.logger.Warn("invalid scan URL", "url", scanURL, "error", err)
		return domain.RepoPreference{}, false
	}
	pref, ok, err := s.store.Get(host)
	if err != nil {
		s.logger.Warn("reading preferences failed", "host", host, "error", err)
		return domain.RepoPreference{}, false
	}
	if !ok || pref.IsZero() {
		return domain.RepoPreference{}, false
	}
	return pref, true
}

// Save remembers owner/repo for the scanned URL's host.
func (s *PreferenceService) Save(scanURL, owner, repo string) (string, error) {
	host, err := HostOf(scanURL)
	if err != nil {
		return "", err
	}
	pref := domain.RepoPreference{Owner: strings.TrimSpace(owner), Repo: strings.TrimSpace(repo)}
	if pref.IsZero() {
		return "", fmt.Errorf("owner and repo are required")
	}
	if err := s.store.Set(host, pref); err != nil {
		return "", fmt.Errorf("saving preference: %w", err)
	}
	s.logger.Debug("preference saved", "host", host, "repo", pref.FullName())
	return host, nil
}

// Detect reads owner/repo from the origin remote of the git repository at
// repoPath and saves it for the scanned URL.
func (s *PreferenceService) Detect(scanURL, repoPath string) (domain.RepoPreference, error) {
	if s.repo == nil {
		return domain.RepoPreference{}, fmt.Errorf("no repository inspector configured")
	}
	pref, err := s.repo.Origin(repoPath)
	if err != nil {
		return domain.RepoPreference{}, fmt.Errorf("detecting repository: %w", err)
	}
	if _, err := s.Save(scanURL, pref.Owner, pref.Repo); err != nil {
		return domain.RepoPreference{}, err
	}
	return pref, nil
}

// All returns every stored preference with its hosts sorted.
func (s *PreferenceService) All() ([]string, map[string]domain.RepoPreference, error) {
	prefs, err := s.store.List()
	if err != nil {
		return nil, nil, fmt.Errorf("listing preferences: %w", err)
	}
	hosts := make([]string, 0, len(prefs))
	for h := range prefs {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts, prefs, nil
}

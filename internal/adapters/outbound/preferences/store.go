package preferences

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/abdidvp/fixspot/internal/domain"
)

const defaultFile = ".fixspot/preferences.json"

// FileStore implements domain.PreferenceStore as a JSON map on disk.
// Writes are read-modify-write; concurrent processes get last-writer-wins.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// New creates a store backed by path. An empty path resolves to
// ~/.fixspot/preferences.json.
func New(path string) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{path: path}
}

// DefaultPath returns the preferences file under the user's home directory,
// falling back to the working directory when home is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultFile
	}
	return filepath.Join(home, defaultFile)
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Get returns the preference stored for host. A missing file is not an error.
func (s *FileStore) Get(host string) (domain.RepoPreference, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return domain.RepoPreference{}, false, err
	}
	pref, ok := prefs[normalizeHost(host)]
	if !ok || pref.IsZero() {
		return domain.RepoPreference{}, false, nil
	}
	return pref, true, nil
}

// Set stores pref for host, creating directories as needed.
func (s *FileStore) Set(host string, pref domain.RepoPreference) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		// A corrupt file is replaced rather than blocking new preferences.
		prefs = make(map[string]domain.RepoPreference)
	}
	prefs[normalizeHost(host)] = pref

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// List returns every stored preference.
func (s *FileStore) List() (map[string]domain.RepoPreference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) load() (map[string]domain.RepoPreference, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]domain.RepoPreference), nil
		}
		return nil, err
	}

	prefs := make(map[string]domain.RepoPreference)
	if len(strings.TrimSpace(string(data))) == 0 {
		return prefs, nil
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	return prefs, nil
}

func normalizeHost(host string) string {
	return strings.ToLower(strings.TrimSpace(host))
}

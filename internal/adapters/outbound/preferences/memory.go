package preferences

import (
	"sync"

	"github.com/abdidvp/fixspot/internal/domain"
)

// Memory is an in-process domain.PreferenceStore.
type Memory struct {
	mu    sync.RWMutex
	prefs map[string]domain.RepoPreference
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{prefs: make(map[string]domain.RepoPreference)}
}

func (m *Memory) Get(host string) (domain.RepoPreference, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pref, ok := m.prefs[normalizeHost(host)]
	return pref, ok && !pref.IsZero(), nil
}

func (m *Memory) Set(host string, pref domain.RepoPreference) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[normalizeHost(host)] = pref
	return nil
}

func (m *Memory) List() (map[string]domain.RepoPreference, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]domain.RepoPreference, len(m.prefs))
	for k, v := range m.prefs {
		out[k] = v
	}
	return out, nil
}

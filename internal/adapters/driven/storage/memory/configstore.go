package memory

import (
	"sync"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
	"github.com/custodia-labs/gitlab-xsearch/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore for testing.
type ConfigStore struct {
	mu       sync.RWMutex
	settings domain.Settings
}

// NewConfigStore creates a new in-memory config store holding settings.
func NewConfigStore(settings domain.Settings) *ConfigStore {
	return &ConfigStore{settings: settings}
}

// Settings returns a copy of the stored settings.
func (s *ConfigStore) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Get(key)
}

// Set validates and stores a value.
func (s *ConfigStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.settings.With(key, value)
	if err != nil {
		return err
	}
	s.settings = next
	return nil
}

// Load is a no-op for the in-memory store.
func (s *ConfigStore) Load() error {
	return nil
}

// Path returns an empty path; nothing is persisted.
func (s *ConfigStore) Path() string {
	return ""
}

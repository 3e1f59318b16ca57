package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/gitlab-xsearch/internal/core/domain"
	"github.com/custodia-labs/gitlab-xsearch/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultDirName is the config directory created under the user's home.
const DefaultDirName = ".gitlab-xsearch"

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// The file holds a personal access token, so it is written with 0600.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	settings domain.Settings
}

// DefaultDir returns ~/.gitlab-xsearch.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.gitlab-xsearch/config.toml.
// The directory is created on first write, not here.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Settings returns a copy of the loaded settings.
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

// Set validates a value and persists immediately.
func (s *ConfigStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.settings.With(key, value)
	if err != nil {
		return err
	}
	if err := s.save(next); err != nil {
		return err
	}
	s.settings = next
	return nil
}

// save writes settings to the TOML file (caller must hold lock).
func (s *ConfigStore) save(settings domain.Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	// Write with restricted permissions
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load reads configuration from the TOML file.
// A missing file yields empty settings.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.settings = domain.Settings{}
			return nil
		}
		return err
	}

	var loaded domain.Settings
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	s.settings = loaded
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

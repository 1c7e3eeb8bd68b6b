package memory

import (
	"sync"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is an in-memory implementation of driven.ConfigStore for testing.
type ConfigStore struct {
	mu     sync.RWMutex
	config *domain.Config
	writes int
}

// NewConfigStore creates a new in-memory config store.
// A nil cfg starts the store empty, as if no document existed.
func NewConfigStore(cfg *domain.Config) *ConfigStore {
	s := &ConfigStore{}
	if cfg != nil {
		c := *cfg
		s.config = &c
	}
	return s
}

// Exists reports whether a configuration has been stored.
func (s *ConfigStore) Exists() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config != nil
}

// Materialize replaces the stored configuration.
func (s *ConfigStore) Materialize(cfg domain.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg.Canvas.PhraseBlacklist = append([]string(nil), cfg.Canvas.PhraseBlacklist...)
	s.config = &cfg
	s.writes++
	return nil
}

// Load returns a copy of the stored configuration.
func (s *ConfigStore) Load() (*domain.Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.config == nil {
		return nil, domain.ErrNotFound
	}
	c := *s.config
	return &c, nil
}

// Path returns a placeholder path.
func (s *ConfigStore) Path() string {
	return "memory://config.toml"
}

// Writes returns how many times Materialize was called.
func (s *ConfigStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

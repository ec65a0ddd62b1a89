package schema

import (
	"fmt"
	"log/slog"
	"sync"
)

// Store is the guarded cell holding the process-wide [Config]. Readers obtain
// the current [Config] with [Store.Load] and must treat it as immutable;
// reconfiguration replaces the whole [Config] through [Store.Update].
type Store struct {
	sync.RWMutex
	config      *Config
	fingerprint string
}

// NewStore returns a pointer to a new [Store] holding the given [Config].
func NewStore(cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	fp, err := Fingerprint(cfg)
	if err != nil {
		return nil, fmt.Errorf("(schema-store) %w", err)
	}

	return &Store{
		config:      cfg,
		fingerprint: fp,
	}, nil
}

// Load returns the currently held [Config].
func (s *Store) Load() *Config {
	s.RLock()
	defer s.RUnlock()

	return s.config
}

// Fingerprint returns the fingerprint of the currently held [Config].
func (s *Store) Fingerprint() string {
	s.RLock()
	defer s.RUnlock()

	return s.fingerprint
}

// Update replaces the held [Config]. It returns false (and keeps the current
// [Config]) if the new [Config] declares the same structure.
func (s *Store) Update(cfg *Config) (bool, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	fp, err := Fingerprint(cfg)
	if err != nil {
		return false, fmt.Errorf("(schema-store) %w", err)
	}

	s.Lock()
	defer s.Unlock()

	if fp == s.fingerprint {
		return false, nil
	}

	slog.Debug("Replacing structure configuration.",
		"old", s.fingerprint,
		"new", fp,
	)

	s.config = cfg
	s.fingerprint = fp

	return true, nil
}

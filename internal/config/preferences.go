package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmagro/solana-explorer/internal/log"
)

// PreferenceFileName is the preference file created in the user's home directory.
const PreferenceFileName = ".solx_config.json"

// ErrPersistence matches every *PersistenceError via errors.Is.
var ErrPersistence = errors.New("persistence failed")

// PersistenceError reports that the preference file could not be written.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("save preferences to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

// Preferences is the only state solx keeps between invocations.
type Preferences struct {
	Cluster string `json:"cluster"`
	RPCURL  string `json:"rpc_url"`
}

// DefaultPreferences points at the public devnet endpoint.
func DefaultPreferences() Preferences {
	return Preferences{Cluster: Devnet, RPCURL: DevnetURL}
}

// Store reads and writes the preference file at a fixed path.
type Store struct {
	Path string
}

// DefaultPath returns ~/.solx_config.json, or ./.solx_config.json when the
// home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, PreferenceFileName)
}

// NewStore returns a store at path, or at DefaultPath when path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{Path: path}
}

// Load never fails: a missing, unreadable or malformed file yields
// DefaultPreferences.
func (s *Store) Load() Preferences {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		log.Config.Debug().Str("path", s.Path).Err(err).Msg("preference file unavailable, using defaults")
		return DefaultPreferences()
	}

	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		log.Config.Debug().Str("path", s.Path).Err(err).Msg("preference file malformed, using defaults")
		return DefaultPreferences()
	}
	if p.Cluster == "" || validateEndpoint(p.RPCURL) != nil {
		log.Config.Debug().Str("path", s.Path).Msg("preference file incomplete, using defaults")
		return DefaultPreferences()
	}
	return p
}

// Save writes p as indented JSON. Concurrent writers race; the last one wins.
func (s *Store) Save(p Preferences) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return &PersistenceError{Path: s.Path, Err: err}
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return &PersistenceError{Path: s.Path, Err: err}
	}
	return nil
}

// Set resolves name through the cluster alias table, persists the result and
// returns it. recognized is false when name fell back to devnet.
func (s *Store) Set(name string, endpoints Endpoints) (p Preferences, recognized bool, err error) {
	url, recognized := endpoints.Resolve(name)
	p = Preferences{Cluster: name, RPCURL: url}
	if err := s.Save(p); err != nil {
		return Preferences{}, recognized, err
	}
	return p, recognized, nil
}

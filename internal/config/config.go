// Package config owns solx's two configuration sources: the JSON preference
// file (active cluster and RPC endpoint, rewritten by `cluster set`) and the
// optional YAML settings file (request timeout and endpoint overrides).
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmagro/solana-explorer/internal/log"
)

// Canonical cluster names.
const (
	MainnetBeta = "mainnet-beta"
	Testnet     = "testnet"
	Devnet      = "devnet"
)

// Public endpoints for the canonical clusters.
const (
	MainnetBetaURL = "https://api.mainnet-beta.solana.com"
	TestnetURL     = "https://api.testnet.solana.com"
	DevnetURL      = "https://api.devnet.solana.com"
)

// SettingsFileName is the settings file looked up in the user's home directory.
const SettingsFileName = ".solx.yaml"

// DefaultTimeout bounds every HTTP request when the settings file does not.
const DefaultTimeout = 30 * time.Second

var aliases = map[string]string{
	"mainnet":      MainnetBeta,
	"mainnet-beta": MainnetBeta,
	"m":            MainnetBeta,
	"testnet":      Testnet,
	"t":            Testnet,
	"devnet":       Devnet,
	"d":            Devnet,
}

// Canonical maps a cluster alias to its canonical name. Matching is exact:
// "MAINNET" and " testnet" are not aliases. ok is false for names outside
// the alias table.
func Canonical(name string) (canonical string, ok bool) {
	canonical, ok = aliases[name]
	return canonical, ok
}

// Endpoints holds the URL for each canonical cluster.
type Endpoints struct {
	MainnetBeta string `yaml:"mainnet-beta"`
	Testnet     string `yaml:"testnet"`
	Devnet      string `yaml:"devnet"`
}

// DefaultEndpoints returns the public endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{MainnetBeta: MainnetBetaURL, Testnet: TestnetURL, Devnet: DevnetURL}
}

// Resolve maps a cluster name to its endpoint. Unrecognized names resolve to
// the devnet endpoint with recognized == false.
func (e Endpoints) Resolve(name string) (endpoint string, recognized bool) {
	canonical, ok := Canonical(name)
	switch canonical {
	case MainnetBeta:
		return e.MainnetBeta, ok
	case Testnet:
		return e.Testnet, ok
	default:
		return e.Devnet, ok
	}
}

// Settings is the optional YAML settings file.
type Settings struct {
	Timeout   time.Duration `yaml:"timeout"`   // per-request HTTP timeout (e.g. "15s")
	Endpoints Endpoints     `yaml:"endpoints"` // overrides for the public endpoints
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{Timeout: DefaultTimeout, Endpoints: DefaultEndpoints()}
}

// DefaultSettingsPath returns ~/.solx.yaml, or ./.solx.yaml without a home dir.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(home, SettingsFileName)
}

// Validate fills unset fields with defaults and rejects malformed endpoints.
// Suspicious timeouts are logged, not rejected.
func (s *Settings) Validate() error {
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must be > 0")
	}
	if s.Timeout == 0 {
		s.Timeout = DefaultTimeout
	}

	const low = 500 * time.Millisecond
	const high = 2 * time.Minute
	if s.Timeout < low {
		log.Config.Warn().Dur("timeout", s.Timeout).Msg("timeout is very low; requests may fail under normal network jitter")
	}
	if s.Timeout > high {
		log.Config.Warn().Dur("timeout", s.Timeout).Msg("timeout is very high; failures may take a long time to surface")
	}

	defaults := DefaultEndpoints()
	fields := []struct {
		name string
		val  *string
		def  string
	}{
		{MainnetBeta, &s.Endpoints.MainnetBeta, defaults.MainnetBeta},
		{Testnet, &s.Endpoints.Testnet, defaults.Testnet},
		{Devnet, &s.Endpoints.Devnet, defaults.Devnet},
	}
	for _, f := range fields {
		if *f.val == "" {
			*f.val = f.def
			continue
		}
		if err := validateEndpoint(*f.val); err != nil {
			return fmt.Errorf("endpoints.%s: %w", f.name, err)
		}
	}
	return nil
}

// LoadSettings reads the YAML settings file at path. A missing file is not
// an error and yields DefaultSettings. ${VAR} references are expanded from
// the environment before parsing.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s := DefaultSettings()
		return &s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var s Settings
	if err := yaml.Unmarshal([]byte(expanded), &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return &s, nil
}

// ValidateEndpoint reports whether raw is an absolute http(s) URL.
func ValidateEndpoint(raw string) error {
	return validateEndpoint(raw)
}

func validateEndpoint(raw string) error {
	if raw == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid url %q (missing scheme or host)", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url scheme %q (expected http or https)", u.Scheme)
	}
	return nil
}

// Package config loads scrapledger.yaml: backend location, the company
// and godown this installation serves, and local data paths. The old
// dashboard hardcoded the company and godown IDs in every screen; here
// they are configuration.
package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// EnvAPIURL overrides the configured backend base URL when set, typically
// via a .env file loaded at startup.
const EnvAPIURL = "SCRAPLEDGER_API_URL"

// Config represents the top-level scrapledger.yaml configuration.
type Config struct {
	API      APIConfig `yaml:"api"`
	Business Business  `yaml:"business"`
	DataDir  string    `yaml:"data_dir"`
}

// APIConfig locates the backend REST service.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Business identifies which company and godown this installation serves.
type Business struct {
	Name      string `yaml:"name"`
	CompanyID ID     `yaml:"company_id"`
	GodownID  ID     `yaml:"godown_id"`
}

// ID is a UUID that reads and writes as a plain string in YAML.
type ID struct {
	uuid.UUID
}

// UnmarshalYAML parses the canonical UUID string form. An empty value is
// the nil UUID.
func (id *ID) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		id.UUID = uuid.Nil
		return nil
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("parsing UUID %q: %w", s, err)
	}
	id.UUID = parsed
	return nil
}

// MarshalYAML renders the canonical UUID string form.
func (id ID) MarshalYAML() (interface{}, error) {
	if id.UUID == uuid.Nil {
		return "", nil
	}
	return id.UUID.String(), nil
}

// Load reads a scrapledger.yaml file from disk and applies environment
// overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if url := os.Getenv(EnvAPIURL); url != "" {
		cfg.API.BaseURL = url
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 30
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new installation.
func Default(businessName string) *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8000",
			TimeoutSeconds: 30,
		},
		Business: Business{
			Name: businessName,
		},
		DataDir: "data",
	}
}

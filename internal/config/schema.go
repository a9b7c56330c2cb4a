// Package config loads planner configuration from global and project
// yaml files, merged over defaults.
package config

// Config represents the full planner configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Store configures the durable trip collection
	Store StoreConfig `yaml:"store" mapstructure:"store"`

	// Server configures the local web surface
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Generator selects how trips are generated
	Generator GeneratorConfig `yaml:"generator" mapstructure:"generator"`
}

// StoreConfig configures the persistence boundary
type StoreConfig struct {
	// Backend is "file", "sqlite" or "memory"
	Backend string `yaml:"backend" mapstructure:"backend"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the web surface
type ServerConfig struct {
	Addr            string `yaml:"addr" mapstructure:"addr"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds" mapstructure:"cache_ttl_seconds"`
}

// GeneratorConfig selects the generation backend
type GeneratorConfig struct {
	// Mode is "local" (deterministic rule-based engine) or "remote"
	Mode string `yaml:"mode" mapstructure:"mode"`
	// APIURL is the full chat-completions endpoint used in remote mode
	APIURL string `yaml:"api_url" mapstructure:"api_url"`
	Model  string `yaml:"model" mapstructure:"model"`
	// APIKeyEnv names the environment variable holding the API key
	APIKeyEnv string `yaml:"api_key_env" mapstructure:"api_key_env"`
}

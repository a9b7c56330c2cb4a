package config

import (
	"os"
	"path/filepath"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Store: StoreConfig{
			Backend: "file",
			Path:    defaultStorePath(),
		},
		Server: ServerConfig{
			Addr:            ":8587",
			CacheTTLSeconds: 300,
		},
		Generator: GeneratorConfig{
			Mode:      "local",
			Model:     "gpt-4o-mini",
			APIKeyEnv: "YATRAKIT_API_KEY",
		},
	}
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".yatrakit", "trips.json")
	}
	return filepath.Join(home, ".yatrakit", "trips.json")
}

// WriteDefault writes the default global configuration to a file
func WriteDefault(path string) error {
	content := `# Yatrakit Configuration
version: "1"

# Durable trip collection
store:
  backend: file  # "file" (single JSON file), "sqlite" or "memory"
  # path: ~/.yatrakit/trips.json

# Local web surface (yatrakit serve)
server:
  addr: ":8587"
  cache_ttl_seconds: 300

# Trip generation
generator:
  mode: local  # "local" (rule-based, offline) or "remote" (OpenAI-compatible endpoint)
  # api_url: https://api.openai.com/v1/chat/completions
  model: gpt-4o-mini
  api_key_env: YATRAKIT_API_KEY
`
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

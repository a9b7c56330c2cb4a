package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Version != "1" {
		t.Errorf("Expected version '1', got '%s'", cfg.Version)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("Expected file backend, got '%s'", cfg.Store.Backend)
	}
	if cfg.Store.Path == "" {
		t.Error("Expected a default store path")
	}
	if cfg.Server.Addr != ":8587" {
		t.Errorf("Expected addr :8587, got '%s'", cfg.Server.Addr)
	}
	if cfg.Generator.Mode != "local" {
		t.Errorf("Expected local generator, got '%s'", cfg.Generator.Mode)
	}
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".yatrakit", "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if len(content) < 100 {
		t.Error("Config file seems too small")
	}
}

func TestLoad_GlobalAndProjectMerge(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(project); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })

	globalDir := filepath.Join(home, ".yatrakit")
	if err := os.MkdirAll(globalDir, 0755); err != nil {
		t.Fatal(err)
	}
	globalYAML := "store:\n  backend: sqlite\nserver:\n  addr: \":9000\"\n"
	if err := os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte(globalYAML), 0644); err != nil {
		t.Fatal(err)
	}

	projectDir := filepath.Join(project, ".yatrakit")
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		t.Fatal(err)
	}
	projectYAML := "server:\n  addr: \":9100\"\n"
	if err := os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte(projectYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Store.Backend != "sqlite" {
		t.Errorf("global override lost, backend = '%s'", cfg.Store.Backend)
	}
	if cfg.Server.Addr != ":9100" {
		t.Errorf("project config should override global, addr = '%s'", cfg.Server.Addr)
	}
	if cfg.Generator.Mode != "local" {
		t.Errorf("untouched defaults should survive, mode = '%s'", cfg.Generator.Mode)
	}
}

func TestLoad_NoFilesReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Store.Backend != "file" {
		t.Errorf("expected defaults, backend = '%s'", cfg.Store.Backend)
	}
}

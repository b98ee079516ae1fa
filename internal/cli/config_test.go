package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LGimbel/boggle-solver/pkg/errors"
	"github.com/LGimbel/boggle-solver/pkg/pipeline"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dictionary != pipeline.DefaultDictionary {
		t.Errorf("Dictionary = %q, want %q", cfg.Dictionary, pipeline.DefaultDictionary)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
	if cfg.Cache.Disabled {
		t.Error("cache should be enabled by default")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want defaults for missing file", err)
	}
	if cfg.Dictionary != pipeline.DefaultDictionary {
		t.Errorf("Dictionary = %q, want default", cfg.Dictionary)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `dictionary = "/usr/share/dict/words"

[cache]
disabled = true

[cache.redis]
addr = "localhost:6379"
db = 2

[server]
addr = ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Dictionary != "/usr/share/dict/words" {
		t.Errorf("Dictionary = %q", cfg.Dictionary)
	}
	if !cfg.Cache.Disabled {
		t.Error("Cache.Disabled should be true")
	}
	if cfg.Cache.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Cache.Redis.Addr)
	}
	if cfg.Cache.Redis.DB != 2 {
		t.Errorf("Redis.DB = %d", cfg.Cache.Redis.DB)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Dictionary != pipeline.DefaultDictionary {
		t.Errorf("Dictionary = %q, want default to survive partial file", cfg.Dictionary)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want default to survive empty section", cfg.Server.Addr)
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("dictionary = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("LoadConfig() should fail on malformed TOML")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}

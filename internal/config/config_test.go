package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset() // LoadConfig uses the global viper

	// Empty directory: no config file, defaults apply.
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Address != ":3000" {
		t.Errorf("Server.Address = %q, want %q", cfg.Server.Address, ":3000")
	}
	if cfg.Database.URI != "mongodb://localhost:27017" {
		t.Errorf("Database.URI = %q, want default", cfg.Database.URI)
	}
	if cfg.Database.Name != "exercise_track" {
		t.Errorf("Database.Name = %q, want %q", cfg.Database.Name, "exercise_track")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	viper.Reset()

	dir := t.TempDir()
	yaml := []byte("server:\n  address: \":9999\"\ndatabase:\n  name: \"tracker_test\"\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Address != ":9999" {
		t.Errorf("Server.Address = %q, want %q", cfg.Server.Address, ":9999")
	}
	if cfg.Database.Name != "tracker_test" {
		t.Errorf("Database.Name = %q, want %q", cfg.Database.Name, "tracker_test")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Database.URI != "mongodb://localhost:27017" {
		t.Errorf("Database.URI = %q, want default", cfg.Database.URI)
	}
}

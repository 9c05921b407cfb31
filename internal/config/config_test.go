package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:50051" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, "127.0.0.1:50051")
	}
	if !cfg.Broker.Simulation {
		t.Errorf("Broker.Simulation = false, want true by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradegate.yaml")
	data := []byte(`server:
  addr: unix:///tmp/tradegate.sock
broker:
  api_key: key-from-file
  secret_key: secret-from-file
  person_id: A123456789
  simulation: true
logging:
  level: debug
  format: text
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != "unix:///tmp/tradegate.sock" {
		t.Errorf("Server.Addr = %q, want unix target", cfg.Server.Addr)
	}
	if cfg.Broker.APIKey != "key-from-file" || cfg.Broker.PersonID != "A123456789" {
		t.Errorf("Broker = %+v, want file values", cfg.Broker)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want debug/text", cfg.Logging)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("Load(missing file) = nil error, want failure")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRADEGATE_ADDR", "0.0.0.0:6000")
	t.Setenv("BROKER_API_KEY", "key-from-env")
	t.Setenv("BROKER_SECRET_KEY", "secret-from-env")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != "0.0.0.0:6000" {
		t.Errorf("Server.Addr = %q, want env override", cfg.Server.Addr)
	}
	if cfg.Broker.APIKey != "key-from-env" || cfg.Broker.SecretKey != "secret-from-env" {
		t.Errorf("Broker credentials = %q/%q, want env overrides", cfg.Broker.APIKey, cfg.Broker.SecretKey)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
}

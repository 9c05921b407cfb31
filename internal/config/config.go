// Package config loads the gateway's YAML configuration and applies
// environment variable overrides.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the gateway.
type Config struct {
	Server  Server  `yaml:"server"`
	Broker  Broker  `yaml:"broker"`
	Logging Logging `yaml:"logging"`
}

// Server holds the listener configuration. Addr is a host:port pair or
// a unix socket target of the form unix:///path.
type Server struct {
	Addr string `yaml:"addr"`
}

// Broker holds credentials for the brokerage session.
type Broker struct {
	APIKey     string `yaml:"api_key"`
	SecretKey  string `yaml:"secret_key"`
	CAPath     string `yaml:"ca_path"`
	CAPassword string `yaml:"ca_password"`
	PersonID   string `yaml:"person_id"`
	Simulation bool   `yaml:"simulation"`
}

// Logging configures the application logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Default returns the configuration used when no file is given: a tcp
// listener on localhost and the simulated broker.
func Default() *Config {
	return &Config{
		Server:  Server{Addr: "127.0.0.1:50051"},
		Broker:  Broker{Simulation: true},
		Logging: Logging{Level: "info", Format: "json"},
	}
}

// Load reads the YAML configuration file at the given path, parses it
// into a Config struct, and then applies environment variable
// overrides. An empty path yields the defaults with overrides applied.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and
// overrides the corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TRADEGATE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("BROKER_API_KEY"); v != "" {
		cfg.Broker.APIKey = v
	}
	if v := os.Getenv("BROKER_SECRET_KEY"); v != "" {
		cfg.Broker.SecretKey = v
	}
	if v := os.Getenv("BROKER_CA_PATH"); v != "" {
		cfg.Broker.CAPath = v
	}
	if v := os.Getenv("BROKER_CA_PASSWORD"); v != "" {
		cfg.Broker.CAPassword = v
	}
	if v := os.Getenv("BROKER_PERSON_ID"); v != "" {
		cfg.Broker.PersonID = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

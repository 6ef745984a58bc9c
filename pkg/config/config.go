// Package config loads the server's YAML configuration and supports
// hot-reloading it while the server runs.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tracestep/tracestep/pkg/validation"
)

// Server is the server configuration.
type Server struct {
	Port                   int    `yaml:"port"`
	LogLevel               string `yaml:"log_level"`
	MaxStoredRuns          int    `yaml:"max_stored_runs"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

// DefaultServer returns the configuration used when no file is given.
func DefaultServer() *Server {
	return &Server{
		Port:                   8080,
		LogLevel:               "info",
		MaxStoredRuns:          100,
		ShutdownTimeoutSeconds: 10,
	}
}

// ShutdownTimeout returns the graceful shutdown window.
func (c *Server) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// Validate checks the configuration, collecting every violation.
func (c *Server) Validate() error {
	return validation.NewConfigValidator("Server").
		PortRange("Port", c.Port).
		Required("LogLevel", c.LogLevel).
		MinInt("MaxStoredRuns", c.MaxStoredRuns, 1).
		MinInt("ShutdownTimeoutSeconds", c.ShutdownTimeoutSeconds, 1).
		Err()
}

// Load reads a YAML config file on top of the defaults and validates the
// result.
func Load(path string) (*Server, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultServer()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

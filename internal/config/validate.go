package config

import (
	"errors"
	"fmt"
	"net"
	"time"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server address cannot be empty")
	}

	// Validate address format and port
	if _, err := net.ResolveTCPAddr("tcp", c.Server.Addr); err != nil {
		return fmt.Errorf("invalid server address: %v", err)
	}

	if _, err := time.ParseDuration(c.Server.ReadTimeout); err != nil {
		return fmt.Errorf("invalid read timeout: %v", err)
	}
	if _, err := time.ParseDuration(c.Server.WriteTimeout); err != nil {
		return fmt.Errorf("invalid write timeout: %v", err)
	}
	if c.Server.MaxUploadSize <= 0 {
		return errors.New("max upload size must be positive")
	}

	if c.HuggingFace.Enabled && c.HuggingFace.Model == "" {
		return errors.New("huggingface model cannot be empty when the bridge is enabled")
	}

	if c.Audit.Enabled && c.Audit.DBPath == "" {
		return errors.New("audit db path cannot be empty when audit is enabled")
	}

	return nil
}

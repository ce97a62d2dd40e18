package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          ":8000",
			ReadTimeout:   "15s",
			WriteTimeout:  "60s",
			MaxUploadSize: 20 << 20,
		},
		HuggingFace: HuggingFaceConfig{
			Enabled: true,
			Model:   "microsoft/DialoGPT-medium",
		},
		Audit: AuditConfig{
			Enabled: true,
			DBPath:  "/tmp/test_audit.db",
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty addr",
			mutate:  func(c *Config) { c.Server.Addr = "" },
			wantErr: "server address",
		},
		{
			name:    "bad addr",
			mutate:  func(c *Config) { c.Server.Addr = "not:a:valid:addr" },
			wantErr: "invalid server address",
		},
		{
			name:    "bad read timeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = "fifteen" },
			wantErr: "invalid read timeout",
		},
		{
			name:    "bad write timeout",
			mutate:  func(c *Config) { c.Server.WriteTimeout = "" },
			wantErr: "invalid write timeout",
		},
		{
			name:    "zero upload size",
			mutate:  func(c *Config) { c.Server.MaxUploadSize = 0 },
			wantErr: "max upload size",
		},
		{
			name: "huggingface enabled without model",
			mutate: func(c *Config) {
				c.HuggingFace.Enabled = true
				c.HuggingFace.Model = ""
			},
			wantErr: "huggingface model",
		},
		{
			name: "audit enabled without db path",
			mutate: func(c *Config) {
				c.Audit.Enabled = true
				c.Audit.DBPath = ""
			},
			wantErr: "audit db path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, "15s", cfg.Server.ReadTimeout)
	assert.Equal(t, "60s", cfg.Server.WriteTimeout)
	assert.Equal(t, int64(20<<20), cfg.Server.MaxUploadSize)
	assert.Equal(t, "microsoft/DialoGPT-medium", cfg.HuggingFace.Model)
	assert.True(t, cfg.Audit.Enabled)
	assert.NoError(t, cfg.Validate())
}

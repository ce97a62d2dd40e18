package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the complete service configuration
// The structure matches the config.yaml file and can be overridden by environment variables

type Config struct {
	Server      ServerConfig      `json:"server" mapstructure:"server"`
	HuggingFace HuggingFaceConfig `json:"huggingface" mapstructure:"huggingface"`
	Report      ReportConfig      `json:"report" mapstructure:"report"`
	Audit       AuditConfig       `json:"audit" mapstructure:"audit"`
}

// ServerConfig contains HTTP server configuration

type ServerConfig struct {
	Addr          string `json:"addr" mapstructure:"addr"`
	ReadTimeout   string `json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout  string `json:"write_timeout" mapstructure:"write_timeout"`
	MaxUploadSize int64  `json:"max_upload_size" mapstructure:"max_upload_size"`
}

// HuggingFaceConfig contains the external model bridge configuration

type HuggingFaceConfig struct {
	Enabled  bool   `json:"enabled" mapstructure:"enabled"`
	APIToken string `json:"api_token" mapstructure:"api_token"`
	Model    string `json:"model" mapstructure:"model"`
}

// ReportConfig contains PDF report branding

type ReportConfig struct {
	Title    string `json:"title" mapstructure:"title"`
	Subtitle string `json:"subtitle" mapstructure:"subtitle"`
}

// AuditConfig contains the request audit log configuration

type AuditConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	DBPath  string `json:"db_path" mapstructure:"db_path"`
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	// Load .env first (ignore error if not present)
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.clausecheck")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("CLAUSECHECK")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found, using defaults")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("SERVER.ADDR", ":8000")
	viper.SetDefault("SERVER.READ_TIMEOUT", "15s")
	viper.SetDefault("SERVER.WRITE_TIMEOUT", "60s")
	viper.SetDefault("SERVER.MAX_UPLOAD_SIZE", int64(20<<20))

	// HuggingFace defaults; the bridge is a no-op without a token
	viper.SetDefault("HUGGINGFACE.ENABLED", true)
	viper.SetDefault("HUGGINGFACE.MODEL", "microsoft/DialoGPT-medium")
	viper.SetDefault("HUGGINGFACE.API_TOKEN", "")

	viper.SetDefault("REPORT.TITLE", "Contract Risk Analysis & Negotiation Report")
	viper.SetDefault("REPORT.SUBTITLE", "Comprehensive Legal Analysis & Strategic Recommendations")

	viper.SetDefault("AUDIT.ENABLED", true)
	viper.SetDefault("AUDIT.DB_PATH", "/tmp/clausecheck_audit.db")
}

// Package config loads the radar configuration.
//
// Values are layered: built-in defaults, then TOML files in the order given,
// then a .env file in the working directory, then environment variables.
//
// # Environment Variables
//
// ## Report
//   - RADAR_XLSX: monitoring workbook (default: 台股三日深度監控報表_全面.xlsx)
//   - RADAR_CONTENT_DIR: directory of daily documents (default: content/daily)
//   - RADAR_TOP_EVENTS: detailed events per report, 0 uses the built-in default
//   - RADAR_ARCHIVE_PATH: sqlite file for daily summaries, empty disables the archive
//
// ## Server
//   - RADAR_SERVER_PORT: HTTP port (default: 8080)
//
// ## Logging
//   - RADAR_LOG_LEVEL: trace, debug, info, warn or error (default: info)
//   - RADAR_LOG_OUTPUTS: comma separated list of console and file (default: console)
//   - RADAR_LOG_FILE: file writer destination (default: logs/radar.log)
//
// ## Typesense
//   - TYPESENSE_HOST: Typesense host (default: localhost)
//   - TYPESENSE_PORT: Typesense port (default: 8108)
//   - TYPESENSE_PROTOCOL: http or https (default: http)
//   - TYPESENSE_API_KEY: API key, empty disables the report index
//   - TYPESENSE_COLLECTION: collection of daily reports (default: daily_reports)
//
// ## Tracing
//   - TRACING_ENABLED: export spans over OTLP gRPC (default: false)
//   - TRACING_ENDPOINT: collector address (default: localhost:4317)
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Report    ReportConfig    `toml:"report"`
	Server    ServerConfig    `toml:"server"`
	Archive   ArchiveConfig   `toml:"archive"`
	Logging   LoggingConfig   `toml:"logging"`
	Typesense TypesenseConfig `toml:"typesense"`
	Tracing   TracingConfig   `toml:"tracing"`
}

type ReportConfig struct {
	Input      string `toml:"input" validate:"required"`
	ContentDir string `toml:"content_dir" validate:"required"`
	TopEvents  int    `toml:"top_events" validate:"gte=0"`
}

type ServerConfig struct {
	Port string `toml:"port" validate:"required,numeric"`
}

type ArchiveConfig struct {
	// Path of the sqlite database. Empty disables archiving.
	Path string `toml:"path"`
}

type LoggingConfig struct {
	Level    string   `toml:"level" validate:"oneof=trace debug info warn error fatal"`
	Outputs  []string `toml:"outputs" validate:"dive,oneof=console file"`
	FilePath string   `toml:"file_path"`
}

type TypesenseConfig struct {
	Host       string `toml:"host" validate:"required"`
	Port       string `toml:"port" validate:"required,numeric"`
	Protocol   string `toml:"protocol" validate:"oneof=http https"`
	APIKey     string `toml:"api_key"`
	Collection string `toml:"collection" validate:"required"`
}

// Enabled reports whether a report index is configured.
func (c TypesenseConfig) Enabled() bool {
	return c.APIKey != ""
}

// URL is the server address passed to the Typesense client.
func (c TypesenseConfig) URL() string {
	return fmt.Sprintf("%s://%s:%s", c.Protocol, c.Host, c.Port)
}

type TracingConfig struct {
	Enabled  bool   `toml:"enabled"`
	Endpoint string `toml:"endpoint"`
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Input:      "台股三日深度監控報表_全面.xlsx",
			ContentDir: "content/daily",
		},
		Server: ServerConfig{Port: "8080"},
		Logging: LoggingConfig{
			Level:    "info",
			Outputs:  []string{"console"},
			FilePath: "logs/radar.log",
		},
		Typesense: TypesenseConfig{
			Host:       "localhost",
			Port:       "8108",
			Protocol:   "http",
			Collection: "daily_reports",
		},
		Tracing: TracingConfig{Endpoint: "localhost:4317"},
	}
}

// Load builds the configuration from defaults, the given TOML files, .env and
// the environment, and validates the result.
func Load(paths ...string) (*Config, error) {
	cfg := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	_ = godotenv.Load()
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	cfg.Report.Input = getEnv("RADAR_XLSX", cfg.Report.Input)
	cfg.Report.ContentDir = getEnv("RADAR_CONTENT_DIR", cfg.Report.ContentDir)
	cfg.Report.TopEvents = getEnvInt("RADAR_TOP_EVENTS", cfg.Report.TopEvents)
	cfg.Archive.Path = getEnv("RADAR_ARCHIVE_PATH", cfg.Archive.Path)

	cfg.Server.Port = getEnv("RADAR_SERVER_PORT", cfg.Server.Port)

	cfg.Logging.Level = strings.ToLower(getEnv("RADAR_LOG_LEVEL", cfg.Logging.Level))
	if outputs, ok := os.LookupEnv("RADAR_LOG_OUTPUTS"); ok {
		cfg.Logging.Outputs = splitList(outputs)
	}
	cfg.Logging.FilePath = getEnv("RADAR_LOG_FILE", cfg.Logging.FilePath)

	cfg.Typesense.Host = getEnv("TYPESENSE_HOST", cfg.Typesense.Host)
	cfg.Typesense.Port = getEnv("TYPESENSE_PORT", cfg.Typesense.Port)
	cfg.Typesense.Protocol = getEnv("TYPESENSE_PROTOCOL", cfg.Typesense.Protocol)
	cfg.Typesense.APIKey = getEnv("TYPESENSE_API_KEY", cfg.Typesense.APIKey)
	cfg.Typesense.Collection = getEnv("TYPESENSE_COLLECTION", cfg.Typesense.Collection)

	if enabled, ok := os.LookupEnv("TRACING_ENABLED"); ok {
		cfg.Tracing.Enabled = enabled == "true"
	}
	cfg.Tracing.Endpoint = getEnv("TRACING_ENDPOINT", cfg.Tracing.Endpoint)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

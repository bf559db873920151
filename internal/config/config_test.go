package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var envKeys = []string{
	"RADAR_XLSX", "RADAR_CONTENT_DIR", "RADAR_TOP_EVENTS", "RADAR_ARCHIVE_PATH", "RADAR_SERVER_PORT",
	"RADAR_LOG_LEVEL", "RADAR_LOG_OUTPUTS", "RADAR_LOG_FILE",
	"TYPESENSE_HOST", "TYPESENSE_PORT", "TYPESENSE_PROTOCOL", "TYPESENSE_API_KEY", "TYPESENSE_COLLECTION",
	"TRACING_ENABLED", "TRACING_ENDPOINT",
}

// clearEnv unsets every key read by Load for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(NewDefaultConfig(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Typesense.Enabled() {
		t.Error("typesense should be disabled without an API key")
	}
}

func TestLoadLayering(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	base := filepath.Join(dir, "base.toml")
	override := filepath.Join(dir, "override.toml")
	writeFile(t, base, `
[report]
input = "base.xlsx"
content_dir = "site/daily"
top_events = 10

[server]
port = "9000"

[typesense]
host = "search"
api_key = "from-file"
`)
	writeFile(t, override, `
[report]
input = "override.xlsx"

[logging]
level = "debug"
outputs = ["console", "file"]
`)
	t.Setenv("RADAR_SERVER_PORT", "9100")
	t.Setenv("TYPESENSE_PROTOCOL", "https")
	t.Setenv("TRACING_ENABLED", "true")

	cfg, err := Load(base, override)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"input from later file", cfg.Report.Input, "override.xlsx"},
		{"content dir from first file", cfg.Report.ContentDir, "site/daily"},
		{"top events", cfg.Report.TopEvents, 10},
		{"env beats file", cfg.Server.Port, "9100"},
		{"log level", cfg.Logging.Level, "debug"},
		{"log outputs", cfg.Logging.Outputs, []string{"console", "file"}},
		{"typesense url", cfg.Typesense.URL(), "https://search:8108"},
		{"typesense enabled", cfg.Typesense.Enabled(), true},
		{"tracing", cfg.Tracing.Enabled, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadEnvOutputs(t *testing.T) {
	clearEnv(t)
	t.Setenv("RADAR_LOG_OUTPUTS", " file , console,")
	t.Setenv("RADAR_LOG_LEVEL", "WARN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff([]string{"file", "console"}, cfg.Logging.Outputs); diff != "" {
		t.Errorf("outputs mismatch (-want +got):\n%s", diff)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"RADAR_SERVER_PORT": "http"}},
		{"bad level", map[string]string{"RADAR_LOG_LEVEL": "loud"}},
		{"bad output", map[string]string{"RADAR_LOG_OUTPUTS": "syslog"}},
		{"bad protocol", map[string]string{"TYPESENSE_PROTOCOL": "ftp"}},
		{"empty input", map[string]string{"RADAR_XLSX": ""}},
		{"negative top events", map[string]string{"RADAR_TOP_EVENTS": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for a missing config file")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

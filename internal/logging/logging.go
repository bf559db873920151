// Package logging builds the arbor logger used across the radar.
package logging

import (
	"os"

	"github.com/phuslu/log"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
	"github.com/ternarybob/arbor/writers"
	"github.com/tw-event-radar/radar/internal/config"
)

const timeFormat = "2006-01-02T15:04:05Z07:00"

// Logger wraps arbor.ILogger.
type Logger struct {
	arbor.ILogger
}

// discardWriter drops everything, so silent loggers never reach the globally
// registered writers.
type discardWriter struct{}

func (w *discardWriter) Write(p []byte) (int, error)           { return len(p), nil }
func (w *discardWriter) WithLevel(_ log.Level) writers.IWriter { return w }
func (w *discardWriter) GetFilePath() string                   { return "" }
func (w *discardWriter) Close() error                          { return nil }

// New creates a logger from the logging configuration. Console output goes to
// stderr so command output on stdout stays clean.
func New(cfg config.LoggingConfig) *Logger {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	outputs := cfg.Outputs
	if len(outputs) == 0 {
		outputs = []string{"console"}
	}

	l := arbor.NewLogger()
	for _, out := range outputs {
		switch out {
		case "console":
			l = l.WithConsoleWriter(models.WriterConfiguration{
				Type:       models.LogWriterTypeConsole,
				Writer:     os.Stderr,
				TimeFormat: timeFormat,
			})
		case "file":
			path := cfg.FilePath
			if path == "" {
				path = "logs/radar.log"
			}
			l = l.WithFileWriter(models.WriterConfiguration{
				Type:       models.LogWriterTypeFile,
				FileName:   path,
				MaxSize:    10 * 1024 * 1024,
				MaxBackups: 5,
				TimeFormat: timeFormat,
			})
		}
	}

	return &Logger{ILogger: l.WithLevelFromString(level)}
}

// NewSilentLogger discards all output. Used in tests.
func NewSilentLogger() *Logger {
	return &Logger{ILogger: arbor.NewLogger().WithWriters([]writers.IWriter{&discardWriter{}})}
}

// WithCorrelationId tags every entry with id.
func (l *Logger) WithCorrelationId(id string) *Logger {
	return &Logger{ILogger: l.ILogger.WithCorrelationId(id)}
}

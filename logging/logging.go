package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-traverse/bag"
)

// ErrUnknownFormat is returned when a logger section names an unsupported format.
var ErrUnknownFormat = errors.New("unknown log format")

// ErrNotSection is returned when the logger key holds a single value instead of a mapping.
var ErrNotSection = errors.New("not a section")

const (
	// FormatJSON writes one JSON object per record.
	FormatJSON = "json"
	// FormatText writes logfmt-style key=value records.
	FormatText = "text"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// NewLogger creates a new slog.Logger writing to w.
// The level is parsed from the config; defaults to INFO if invalid or empty.
// Output is JSON unless the format is "text".
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	}

	if strings.EqualFold(config.Format, FormatText) {
		return slog.New(slog.NewTextHandler(w, options))
	}

	return slog.New(slog.NewJSONHandler(w, options))
}

// ConfigFrom reads the logger section at key from a loaded tree.
// Missing "level" and "format" entries are left empty.
func ConfigFrom(b *bag.Bag, key any) (LoggerConfig, error) {
	var config LoggerConfig

	section, err := b.Extend(key, nil)
	if errors.Is(err, bag.ErrEmptyValue) {
		return config, nil
	}

	if err != nil {
		return config, fmt.Errorf("logger section: %w", err)
	}

	if section.Mapping() == nil {
		return config, fmt.Errorf("logger section %v: %w", key, ErrNotSection)
	}

	config.Level, err = bag.LookupOr(section, "level", "")
	if err != nil {
		return config, fmt.Errorf("logger level: %w", err)
	}

	config.Format, err = bag.LookupOr(section, "format", "")
	if err != nil {
		return config, fmt.Errorf("logger format: %w", err)
	}

	switch strings.ToLower(config.Format) {
	case "", FormatJSON, FormatText:
		return config, nil
	default:
		return config, fmt.Errorf("%w: %q", ErrUnknownFormat, config.Format)
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package config

import (
	"github.com/dshills/twine/internal/logging"
	"github.com/dshills/twine/internal/text/buffer"
	"github.com/dshills/twine/internal/text/codec"
)

// TextConfig holds the [text] section.
type TextConfig struct {
	// EncodingName is the buffer encoding: utf-8, utf-16 or ascii.
	EncodingName string `toml:"encoding" yaml:"encoding"`
	// Charset is the WHATWG label input is decoded from.
	Charset string `toml:"charset" yaml:"charset"`
	// MaxCapacity bounds buffer growth in bytes. 0 means unbounded.
	MaxCapacity int `toml:"maxCapacity" yaml:"maxCapacity"`
	// Growth is the reallocation policy: exact or double.
	Growth string `toml:"growth" yaml:"growth"`
}

// Encoding returns the parsed buffer encoding, falling back to UTF-8.
func (t TextConfig) Encoding() codec.Encoding {
	enc, err := codec.ParseEncoding(t.EncodingName)
	if err != nil {
		return codec.UTF8
	}
	return enc
}

// BufferOptions returns the buffer options these settings describe.
func (t TextConfig) BufferOptions() []buffer.Option {
	growth, _ := buffer.ParseGrowth(t.Growth)
	return []buffer.Option{
		buffer.WithMaxCapacity(t.MaxCapacity),
		buffer.WithGrowth(growth),
	}
}

// LoggingConfig holds the [logging] section.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// Format is the line encoding: text or json.
	Format string `toml:"format" yaml:"format"`
}

// LoggerConfig converts the section into a logger configuration.
func (l LoggingConfig) LoggerConfig() logging.LoggerConfig {
	cfg := logging.DefaultLoggerConfig()
	cfg.Level = logging.ParseLogLevel(l.Level)
	cfg.Format = logging.Format(l.Format)
	return cfg
}

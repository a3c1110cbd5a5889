package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/twine/internal/config/loader"
	"github.com/dshills/twine/internal/logging"
	"github.com/dshills/twine/internal/text/buffer"
	"github.com/dshills/twine/internal/text/codec"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "TWINE_"

// Config is the merged twine configuration.
type Config struct {
	Text    TextConfig    `toml:"text" yaml:"text"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`

	// Sources lists the layers that contributed, lowest first.
	Sources []string `toml:"-" yaml:"-"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Text: TextConfig{
			EncodingName: codec.UTF8.String(),
			Charset:      "utf-8",
			MaxCapacity:  0,
			Growth:       buffer.GrowthExact.String(),
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: string(logging.FormatText),
		},
		Sources: []string{"defaults"},
	}
}

type loadOptions struct {
	fs        loader.FileSystem
	file      string
	envPrefix string
	overrides map[string]any
}

// Option configures Load.
type Option func(*loadOptions)

// WithFileSystem sets the file system config files are read from.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithFile names a config file. The file must exist.
func WithFile(path string) Option {
	return func(o *loadOptions) {
		o.file = path
	}
}

// WithEnvPrefix changes the environment variable prefix. An empty prefix
// disables the environment layer.
func WithEnvPrefix(prefix string) Option {
	return func(o *loadOptions) {
		o.envPrefix = prefix
	}
}

// WithOverride sets a dotted setting path in the highest layer.
func WithOverride(path string, value any) Option {
	return func(o *loadOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]any)
		}
		loader.SetByPath(o.overrides, path, value)
	}
}

// Load merges defaults, the config file, the environment and overrides, and
// validates the result.
func Load(opts ...Option) (*Config, error) {
	o := loadOptions{
		fs:        loader.DefaultFS(),
		envPrefix: EnvPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Default()
	merged, err := cfg.toMap()
	if err != nil {
		return nil, err
	}

	if o.file != "" {
		fileMap, err := loadFile(o.fs, o.file)
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, fileMap)
		cfg.Sources = append(cfg.Sources, o.file)
	}

	if o.envPrefix != "" {
		envMap, err := loader.NewEnvLoader(o.envPrefix).Load()
		if err != nil {
			return nil, fmt.Errorf("loading environment: %w", err)
		}
		if len(envMap) > 0 {
			merged = loader.DeepMerge(merged, envMap)
			cfg.Sources = append(cfg.Sources, "env")
		}
	}

	if len(o.overrides) > 0 {
		merged = loader.DeepMerge(merged, o.overrides)
		cfg.Sources = append(cfg.Sources, "flags")
	}

	if err := cfg.fromMap(merged); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(fsys loader.FileSystem, path string) (map[string]any, error) {
	if _, err := fsys.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		return nil, fmt.Errorf("stat config file %s: %w", path, err)
	}
	l, err := loader.ForPath(fsys, path)
	if err != nil {
		return nil, err
	}
	return l.Load()
}

// toMap and fromMap round-trip through TOML so every layer is decoded by
// the same struct tags.
func (c *Config) toMap() (map[string]any, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding defaults: %w", err)
	}
	return m, nil
}

func (c *Config) fromMap(m map[string]any) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding merged config: %w", err)
	}
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(c); err != nil {
		return &ParseError{Path: "<merged>", Message: err.Error(), Err: err}
	}
	return nil
}

// Validate checks every setting and reports the first invalid one.
func (c *Config) Validate() error {
	if _, err := codec.ParseEncoding(c.Text.EncodingName); err != nil {
		return &ValidationError{Path: "text.encoding", Message: "unknown encoding", Value: c.Text.EncodingName}
	}
	if strings.TrimSpace(c.Text.Charset) == "" {
		return &ValidationError{Path: "text.charset", Message: "charset is required", Value: c.Text.Charset}
	}
	if c.Text.MaxCapacity < 0 {
		return &ValidationError{Path: "text.maxCapacity", Message: "must not be negative", Value: c.Text.MaxCapacity}
	}
	if _, ok := buffer.ParseGrowth(c.Text.Growth); !ok {
		return &ValidationError{Path: "text.growth", Message: "must be exact or double", Value: c.Text.Growth}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "logging.level", Message: "unknown level", Value: c.Logging.Level}
	}
	switch logging.Format(c.Logging.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return &ValidationError{Path: "logging.format", Message: "must be text or json", Value: c.Logging.Format}
	}
	return nil
}

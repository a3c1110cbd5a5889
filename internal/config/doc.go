// Package config provides the configuration system for twine.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← TWINE_ENCODING, TWINE_TEXT_GROWTH, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← twine.toml or twine.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: Configuration file loading (TOML, YAML, environment variables)
//
// # Basic Usage
//
//	cfg, err := config.Load(config.WithFile("twine.toml"))
//	if err != nil {
//	    return err
//	}
//	buf := buffer.New(cfg.Text.Encoding(), cfg.Text.BufferOptions()...)
//
// # Settings
//
//	[text]
//	encoding = "utf-8"      # utf-8, utf-16, ascii
//	charset = "utf-8"       # WHATWG label used to decode input
//	maxCapacity = 0         # 0 means unbounded
//	growth = "exact"        # exact or double
//
//	[logging]
//	level = "warn"
//	format = "text"         # text or json
package config

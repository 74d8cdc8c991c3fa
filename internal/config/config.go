// Package config provides the texted configuration.
//
// Configuration is layered in order of increasing precedence:
//
//  1. Built-in defaults (Default)
//  2. TOML file (default $XDG_CONFIG_HOME/texted/config.toml)
//  3. Environment variables (TEXTED_SECTION_SETTING)
//  4. Explicit overrides, typically CLI flags
//
// A missing configuration file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/texted/internal/config/loader"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "TEXTED_"

// ErrInvalid is wrapped by validation failures.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete texted configuration.
type Config struct {
	Dictionary DictionaryConfig `toml:"dictionary"`
	Completion CompletionConfig `toml:"completion"`
	Spellcheck SpellcheckConfig `toml:"spellcheck"`
	Document   DocumentConfig   `toml:"document"`
	History    HistoryConfig    `toml:"history"`
	UI         UIConfig         `toml:"ui"`
	Status     StatusConfig     `toml:"status"`
	Logging    LoggingConfig    `toml:"logging"`
	Plugins    PluginsConfig    `toml:"plugins"`
}

// DictionaryConfig locates the word list.
type DictionaryConfig struct {
	Path string `toml:"path"`
}

// CompletionConfig locates the optional YAML completion overlay.
type CompletionConfig struct {
	Path string `toml:"path"`
}

// SpellcheckConfig locates the spellcheck log.
type SpellcheckConfig struct {
	Log string `toml:"log"`
}

// DocumentConfig holds the default save path.
type DocumentConfig struct {
	Path string `toml:"path"`
}

// HistoryConfig bounds the undo history.
type HistoryConfig struct {
	Capacity int `toml:"capacity"`
}

// UIConfig controls the terminal frontend.
type UIConfig struct {
	// Themes are color names cycled through by the cycle-theme key.
	Themes []string `toml:"themes"`
	// Theme is the initial theme; empty selects the first.
	Theme string `toml:"theme"`
	// Hint is the color of the inline completion hint.
	Hint string `toml:"hint"`
}

// StatusConfig locates the word-count status file. Empty disables it.
type StatusConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig controls the diagnostic log.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// PluginsConfig locates the Lua startup script. Empty disables it.
type PluginsConfig struct {
	Init string `toml:"init"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dictionary: DictionaryConfig{Path: "dictionary.txt"},
		Spellcheck: SpellcheckConfig{Log: "spellcheck.log"},
		Document:   DocumentConfig{Path: "myDoc.txt"},
		History:    HistoryConfig{Capacity: 100},
		UI: UIConfig{
			Themes: []string{"silver", "blue", "lime", "red", "fuchsia", "yellow"},
			Hint:   "lime",
		},
		Status:  StatusConfig{Path: "word_count.txt"},
		Logging: LoggingConfig{Level: "info", File: defaultLogFile()},
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "texted", "config.toml")
}

func defaultLogFile() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "texted", "texted.log")
}

// Options controls Load.
type Options struct {
	// Path is the TOML file to read. Empty skips the file layer.
	Path string
	// FS overrides the file system used for Path.
	FS loader.FileSystem
	// Env overrides the environment loader. Nil uses TEXTED_ variables.
	Env loader.Loader
	// Overrides are applied last, keyed by dotted path ("history.capacity").
	Overrides map[string]any
}

// Load builds a Config from defaults, the file, the environment and the
// overrides, then validates it.
func Load(opts Options) (Config, error) {
	merged, err := toMap(Default())
	if err != nil {
		return Config{}, err
	}

	if opts.Path != "" {
		fsys := opts.FS
		if fsys == nil {
			fsys = loader.DefaultFS()
		}
		file, err := loader.NewTOMLLoaderWithFS(fsys, opts.Path).Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, file)
	}

	env := opts.Env
	if env == nil {
		env = loader.NewEnvLoader(EnvPrefix)
	}
	fromEnv, err := env.Load()
	if err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}
	merged = loader.DeepMerge(merged, fromEnv)

	merged = loader.DeepMerge(merged, expand(opts.Overrides))

	cfg, err := fromMap(merged)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the program cannot run with.
func (c *Config) Validate() error {
	if c.History.Capacity < 2 {
		return fmt.Errorf("%w: history.capacity must be at least 2, got %d", ErrInvalid, c.History.Capacity)
	}
	if len(c.UI.Themes) == 0 {
		return fmt.Errorf("%w: ui.themes must not be empty", ErrInvalid)
	}
	if c.UI.Theme != "" && !slices.Contains(c.UI.Themes, c.UI.Theme) {
		return fmt.Errorf("%w: ui.theme %q is not one of ui.themes", ErrInvalid, c.UI.Theme)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// ThemeIndex returns the index of the initial theme in Themes.
func (c *Config) ThemeIndex() int {
	if i := slices.Index(c.UI.Themes, c.UI.Theme); i >= 0 {
		return i
	}
	return 0
}

// toMap converts a Config to the nested map form used for layering.
func toMap(cfg Config) (map[string]any, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode defaults: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode defaults: %w", err)
	}
	return m, nil
}

// fromMap decodes the merged map into a typed Config.
func fromMap(m map[string]any) (Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return Config{}, fmt.Errorf("encode config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return cfg, nil
}

// expand turns {"history.capacity": 5} into {"history": {"capacity": 5}}.
func expand(flat map[string]any) map[string]any {
	out := make(map[string]any, len(flat))
	for path, value := range flat {
		section, key, ok := strings.Cut(path, ".")
		if !ok {
			out[path] = value
			continue
		}
		sub, _ := out[section].(map[string]any)
		if sub == nil {
			sub = make(map[string]any)
			out[section] = sub
		}
		sub[key] = value
	}
	return out
}

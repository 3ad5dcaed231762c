package transport

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds server settings, usually read from a TOML file.
type Config struct {
	Addr             string `toml:"addr"`
	MaxConns         int    `toml:"max_conns"`
	MaxMessageTokens int    `toml:"max_message_tokens"`
	// Pretty makes the server write pretty encoded messages.
	Pretty   bool   `toml:"pretty"`
	Gops     bool   `toml:"gops"`
	LogLevel string `toml:"log_level"`

	Log *slog.Logger `toml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Addr:             ":7411",
		MaxConns:         64,
		MaxMessageTokens: 1 << 20,
		LogLevel:         "info",
	}
}

// LoadConfig reads the TOML file at path over the defaults. An empty path
// gives the defaults. Unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.MaxConns < 0 {
		return fmt.Errorf("max_conns must not be negative, got %d", c.MaxConns)
	}
	if c.MaxMessageTokens < 0 {
		return fmt.Errorf("max_message_tokens must not be negative, got %d", c.MaxMessageTokens)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel, which is one of debug, info, warn or error.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}

// Logger returns c.Log, creating a JSON logger on stderr at c's level when
// it is unset.
func (c *Config) Logger() *slog.Logger {
	if c.Log != nil {
		return c.Log
	}
	lvl, err := c.Level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	c.Log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
	return c.Log
}

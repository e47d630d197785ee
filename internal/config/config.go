package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"rc5-cipher/internal/rc5"
)

// Config holds the settings shared by the rc5 commands.
type Config struct {
	// Paths
	VectorFile string `json:"vector_file"`
	ReportPath string `json:"report_path"`

	// Cipher parameters for commands that take a raw key
	WordBits int  `json:"word_bits"`
	Rounds   *int `json:"rounds"`

	// Run settings
	Workers         int `json:"workers"`
	ProgressSeconds int `json:"progress_seconds"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Relative paths are relative to the config file
	dir := filepath.Dir(path)
	if cfg.VectorFile != "" && !filepath.IsAbs(cfg.VectorFile) {
		cfg.VectorFile = filepath.Join(dir, cfg.VectorFile)
	}
	if cfg.ReportPath != "" && !filepath.IsAbs(cfg.ReportPath) {
		cfg.ReportPath = filepath.Join(dir, cfg.ReportPath)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when set.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.VectorFile != "" {
		c.VectorFile = flags.VectorFile
	}
	if flags.ReportPath != "" {
		c.ReportPath = flags.ReportPath
	}
	if flags.WordBits > 0 {
		c.WordBits = flags.WordBits
	}
	if flags.Rounds >= 0 {
		r := flags.Rounds
		c.Rounds = &r
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults: RC5-32/12, the nominal parameter choice
	if c.WordBits <= 0 {
		c.WordBits = 32
	}
	if c.Rounds == nil {
		r := 12
		c.Rounds = &r
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.ProgressSeconds == 0 {
		c.ProgressSeconds = DefaultProgressSeconds
	}
}

// Validate rejects cipher parameters the rc5 package cannot serve.
// Call it after Resolve.
func (c *Config) Validate() error {
	if c.Rounds == nil {
		return fmt.Errorf("config: rounds not set")
	}
	if err := rc5.CheckParams(c.WordBits, *c.Rounds); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// DefaultProgressSeconds is the progress interval used when the config
// leaves progress_seconds unset.
const DefaultProgressSeconds = 2

// Progress returns the progress reporting interval. A negative
// progress_seconds disables progress lines and yields zero.
func (c *Config) Progress() time.Duration {
	if c.ProgressSeconds < 0 {
		return 0
	}
	return time.Duration(c.ProgressSeconds) * time.Second
}

// Flags holds CLI flag values that override config file settings.
// Rounds is negative when the flag was not given, since 0 is a valid count.
type Flags struct {
	VectorFile string
	ReportPath string
	WordBits   int
	Rounds     int
	Workers    int
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/bencode/lib/binhash"
	"github.com/bureau-foundation/bencode/lib/compress"
)

// EnvironmentVariable names the variable [Load] reads the config path from.
const EnvironmentVariable = "BENCODE_CONFIG"

// OutputFormats lists the accepted values of output.format.
var OutputFormats = []string{"json", "tree", "diag"}

// Config is the master configuration for the bencode tool.
type Config struct {
	// Decode configures how input documents are parsed.
	Decode DecodeConfig `yaml:"decode"`

	// Output configures how decoded documents are printed.
	Output OutputConfig `yaml:"output"`

	// Encode configures the bytes written by the encode command.
	Encode EncodeConfig `yaml:"encode"`

	// Hash configures the hash command.
	Hash HashConfig `yaml:"hash"`

	// Log configures diagnostic logging on stderr.
	Log LogConfig `yaml:"log"`
}

// DecodeConfig configures parsing.
type DecodeConfig struct {
	// MaxDepth limits list and dictionary nesting. 0 selects the
	// library default; negative disables the limit.
	MaxDepth int `yaml:"max_depth"`

	// AllowTrailing accepts bytes after the top-level value instead of
	// reporting them as an error.
	AllowTrailing bool `yaml:"allow_trailing"`
}

// OutputConfig configures printing.
type OutputConfig struct {
	// Format is the default format of the decode command: json, tree,
	// or diag.
	Format string `yaml:"format"`

	// Compact selects single-line JSON.
	Compact bool `yaml:"compact"`

	// Indent is the per-level JSON indentation when Compact is false.
	Indent string `yaml:"indent"`
}

// EncodeConfig configures encoding.
type EncodeConfig struct {
	// Compression wraps encoded output: none, lz4, or zstd.
	Compression string `yaml:"compression"`
}

// HashConfig configures digests.
type HashConfig struct {
	// Algorithm is sha1, sha256, or blake3.
	Algorithm string `yaml:"algorithm"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given. A loaded
// file is merged over these values.
func Default() *Config {
	return &Config{
		Decode: DecodeConfig{
			MaxDepth:      0,
			AllowTrailing: false,
		},
		Output: OutputConfig{
			Format:  "json",
			Compact: false,
			Indent:  "  ",
		},
		Encode: EncodeConfig{
			Compression: "none",
		},
		Hash: HashConfig{
			Algorithm: string(binhash.SHA1),
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from the file named by BENCODE_CONFIG. It fails
// when the variable is unset; callers that want to run without a file
// check the variable first and use [Default].
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of a config file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merges it over
// [Default], and validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := cfg.parse(data); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// parse merges YAML data into c. An empty document leaves c unchanged.
func (c *Config) parse(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(OutputFormats, c.Output.Format) {
		errs = append(errs, fmt.Errorf("output.format must be one of: %v", OutputFormats))
	}

	if _, err := compress.ParseTag(c.Encode.Compression); err != nil {
		errs = append(errs, fmt.Errorf("encode.compression: %w", err))
	}

	if _, err := binhash.ParseAlgorithm(c.Hash.Algorithm); err != nil {
		errs = append(errs, fmt.Errorf("hash.algorithm: %w", err))
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

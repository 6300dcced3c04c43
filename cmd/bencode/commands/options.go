// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"
	"os"

	"github.com/bureau-foundation/bencode/cmd/bencode/cli"
	"github.com/bureau-foundation/bencode/lib/config"
)

// configParams selects the configuration file and log level. Embedded in
// every command's params.
type configParams struct {
	ConfigFile string `json:"config"    flag:"config"    desc:"YAML configuration file (default: $BENCODE_CONFIG, else built-in defaults)"`
	LogLevel   string `json:"log_level" flag:"log-level" desc:"log level: debug, info, warn, error (overrides log.level)"`
}

// decodeParams are the parsing options shared by document-reading commands.
// Zero values defer to the configuration.
type decodeParams struct {
	HexInput      bool `json:"hex_input"      flag:"hex,x"          desc:"treat input as hex-encoded bencode"`
	MaxDepth      int  `json:"max_depth"      flag:"max-depth"      desc:"nesting limit; 0 uses decode.max_depth, negative disables the limit"`
	AllowTrailing bool `json:"allow_trailing" flag:"allow-trailing" desc:"ignore bytes after the top-level value"`
}

// settings merges params over cfg.
func (p decodeParams) settings(cfg *config.Config) decodeSettings {
	settings := decodeSettings{
		MaxDepth:      cfg.Decode.MaxDepth,
		AllowTrailing: cfg.Decode.AllowTrailing || p.AllowTrailing,
	}
	if p.MaxDepth != 0 {
		settings.MaxDepth = p.MaxDepth
	}
	return settings
}

// loadConfig resolves the configuration: --config wins, then
// $BENCODE_CONFIG, then the built-in defaults.
func loadConfig(params configParams) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case params.ConfigFile != "":
		cfg, err = config.LoadFile(params.ConfigFile)
	case os.Getenv(config.EnvironmentVariable) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	if params.LogLevel != "" {
		cfg.Log.Level = params.LogLevel
	}
	return cfg, nil
}

// setup loads the configuration and builds a logger scoped to command.
func setup(params configParams, command string) (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(params)
	if err != nil {
		return nil, nil, err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, cli.Validation("%w", err)
	}
	logger := cli.NewCommandLogger(level).With("command", command)
	return cfg, logger, nil
}

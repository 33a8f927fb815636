package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"flint/internal/diag"
)

// fileConfig is the optional flint.toml layout.
type fileConfig struct {
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
}

type diagnosticsConfig struct {
	IncludeDirs []string `toml:"include_dirs"`
	Color       string   `toml:"color"`
	Prog        string   `toml:"prog"`
}

// loadConfig reads the config file named by --config, or ./flint.toml when
// it exists. A missing default file is not an error.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	explicit := path != ""
	if path == "" {
		path = "flint.toml"
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return cfg, nil
}

// resolveSink maps the --color mode (or the config default) onto a sink for
// stdout.
func resolveSink(cmd *cobra.Command, cfgDefault string) (diag.Sink, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	if !cmd.Root().PersistentFlags().Changed("color") && cfgDefault != "" {
		mode = cfgDefault
	}
	switch mode {
	case "on":
		return diag.NewTextSink(os.Stdout, true), nil
	case "off":
		return diag.NewTextSink(os.Stdout, false), nil
	case "auto":
		return diag.NewTermSink(os.Stdout), nil
	}
	return nil, fmt.Errorf("unknown color mode %q (want auto|on|off)", mode)
}

func configFromFlags(cmd *cobra.Command) (fileConfig, error) {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return fileConfig{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	return loadConfig(path)
}

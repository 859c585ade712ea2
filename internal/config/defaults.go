package config

import (
	_ "embed"
)

//go:embed defaults/coursefield.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Layout: LayoutConfig{
			Horizontal: 1,
			Vertical:   1,
		},
		Export: ExportConfig{
			MaxWidth: 0,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

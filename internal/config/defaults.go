package config

import (
	_ "embed"
)

//go:embed defaults/lavaqua.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			Algorithm:     "bfs",
			MaxExplored:   0,
			Timeout:       0,
			ProgressEvery: 10000,
		},
		Levels: LevelsConfig{
			Dir: "levels",
		},
		Report: ReportConfig{
			Color:      "auto",
			Theme:      "default",
			ShowBoards: false,
			MaxBoards:  40,
		},
		Log: LogConfig{
			Level: "info",
		},
		Source: "defaults",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

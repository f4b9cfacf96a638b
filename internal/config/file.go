package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [Configuration] with every field optional, so a decoded
// config file tells which keys it actually sets. Unknown keys are ignored.
type fileConfig struct {
	SongPath           *string           `yaml:"song_path"`
	DataPath           *string           `yaml:"data_path"`
	NoCollectionUpdate *bool             `yaml:"no_collection_update"`
	UseWebPlayer       *bool             `yaml:"use_web_player"`
	Port               *uint16           `yaml:"port"`
	PortWS             *uint16           `yaml:"port_ws"`
	SongFormat         *string           `yaml:"song_format"`
	Player             *filePlayerConfig `yaml:"player"`
}

type filePlayerConfig struct {
	Fullscreen        *bool    `yaml:"fullscreen"`
	Scale             *float64 `yaml:"scale"`
	DisableBackground *bool    `yaml:"disable_background"`
}

// Merge layers the config file at path on top of defaults. Only keys present
// in the file replace the corresponding default; every other field keeps its
// default value. If no regular file exists at path, defaults is returned as is.
//
// Decoding is atomic: invalid YAML or a key of the wrong type fails the whole
// merge with [ErrDecodeFailure] and no configuration is returned. Read
// failures wrap [ErrIOFailure].
func Merge(defaults Configuration, path string) (Configuration, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.Mode().IsRegular()) {
		return defaults, nil
	}
	if err != nil {
		return Configuration{}, fmt.Errorf("%w: check config file: %w", ErrIOFailure, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Configuration{}, fmt.Errorf("%w: read config file: %w", ErrIOFailure, err)
	}

	fileCfg, err := parseYAML(data)
	if err != nil {
		return Configuration{}, err
	}

	cfg := defaults
	fileCfg.applyTo(&cfg)

	return cfg, nil
}

func parseYAML(data []byte) (*fileConfig, error) {
	var fileCfg fileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("%w: decode yaml config: %w", ErrDecodeFailure, err)
	}

	return &fileCfg, nil
}

func (f *fileConfig) applyTo(cfg *Configuration) {
	if f.SongPath != nil {
		cfg.SongPath = *f.SongPath
	}
	if f.DataPath != nil {
		cfg.DataPath = *f.DataPath
	}
	if f.NoCollectionUpdate != nil {
		cfg.NoCollectionUpdate = *f.NoCollectionUpdate
	}
	if f.UseWebPlayer != nil {
		cfg.UseWebPlayer = *f.UseWebPlayer
	}
	if f.Port != nil {
		cfg.Port = *f.Port
	}
	if f.PortWS != nil {
		cfg.PortWS = *f.PortWS
	}
	if f.SongFormat != nil {
		cfg.SongFormat = *f.SongFormat
	}
	if f.Player == nil {
		return
	}
	if f.Player.Fullscreen != nil {
		cfg.Player.Fullscreen = *f.Player.Fullscreen
	}
	if f.Player.Scale != nil {
		cfg.Player.Scale = *f.Player.Scale
	}
	if f.Player.DisableBackground != nil {
		cfg.Player.DisableBackground = *f.Player.DisableBackground
	}
}

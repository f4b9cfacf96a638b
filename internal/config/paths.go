// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

//go:generate mockgen -source=paths.go -destination=../mock/path_resolver_mock.go -package=mock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appDirName     = "karaoke-rs"
	configFileName = "config.yaml"
	songsDirName   = "songs"
)

// PathResolver supplies the platform base directories the application
// stores its files under.
type PathResolver interface {
	// ConfigDir returns the per-user configuration root
	// (e.g. ~/.config on Linux).
	ConfigDir() (string, error)
	// DataDir returns the per-user data root
	// (e.g. ~/.local/share on Linux).
	DataDir() (string, error)
}

// Paths is the resolution context: the default locations of the config file
// and the data and song directories. It is computed once at startup and
// passed to [Resolve].
type Paths struct {
	// ConfigFile is the default config file location, used when no explicit
	// path is supplied.
	ConfigFile string
	// DataDir is the default application data directory.
	DataDir string
	// SongDir is the default song library directory.
	SongDir string
}

// ResolvePaths builds the default [Paths] from the base directories supplied
// by r, creating the application config and data directories if they are
// missing. The song directory itself is not created.
func ResolvePaths(r PathResolver) (Paths, error) {
	configRoot, err := r.ConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf("%w: resolve config dir: %w", ErrIOFailure, err)
	}
	dataRoot, err := r.DataDir()
	if err != nil {
		return Paths{}, fmt.Errorf("%w: resolve data dir: %w", ErrIOFailure, err)
	}

	configDir := filepath.Join(configRoot, appDirName)
	dataDir := filepath.Join(dataRoot, appDirName)

	for _, dir := range []string{configDir, dataDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Paths{}, fmt.Errorf("%w: create dir %s: %w", ErrIOFailure, dir, err)
		}
	}

	return Paths{
		ConfigFile: filepath.Join(configDir, configFileName),
		DataDir:    dataDir,
		SongDir:    filepath.Join(dataDir, songsDirName),
	}, nil
}

type platformResolver struct{}

// NewPlatformResolver returns a [PathResolver] following the XDG base
// directory spec on Unix and the native conventions on macOS and Windows.
func NewPlatformResolver() PathResolver {
	return platformResolver{}
}

func (platformResolver) ConfigDir() (string, error) {
	if xdg.ConfigHome == "" {
		return "", errors.New("platform config directory is unknown")
	}
	return xdg.ConfigHome, nil
}

func (platformResolver) DataDir() (string, error) {
	if xdg.DataHome == "" {
		return "", errors.New("platform data directory is unknown")
	}
	return xdg.DataHome, nil
}

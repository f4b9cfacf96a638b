// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/karaoke/internal/logger"

// Configuration is the fully resolved runtime configuration of the karaoke
// player. A fresh value is built on every resolution; nothing in this package
// keeps a reference to it afterwards.
//
// Struct tags:
//   - yaml: top-level key in config.yaml; keys match the field names in
//     snake_case.
type Configuration struct {
	// SongPath is the directory scanned for media files.
	SongPath string `yaml:"song_path"`

	// DataPath is the directory holding application-managed data.
	DataPath string `yaml:"data_path"`

	// NoCollectionUpdate skips rescanning the song library on startup.
	// It is the inverse of the "refresh collection" override.
	NoCollectionUpdate bool `yaml:"no_collection_update"`

	// UseWebPlayer selects the browser-based player instead of the native
	// player window.
	UseWebPlayer bool `yaml:"use_web_player"`

	// Port is the HTTP server port.
	Port uint16 `yaml:"port"`

	// PortWS is the WebSocket server port. It is not checked against Port.
	PortWS uint16 `yaml:"port_ws"`

	// SongFormat is the pattern used to parse song file names into
	// metadata (e.g. "[*] - [Artist] - [Title]").
	SongFormat string `yaml:"song_format"`

	// Player holds display settings of the native player.
	Player PlayerConfig `yaml:"player"`
}

// PlayerConfig holds display settings of the native player window.
type PlayerConfig struct {
	// Fullscreen opens the native player in fullscreen mode.
	Fullscreen bool `yaml:"fullscreen"`

	// Scale is the UI scale factor.
	Scale float64 `yaml:"scale"`

	// DisableBackground turns off background rendering.
	DisableBackground bool `yaml:"disable_background"`
}

// GetConfig resolves the application configuration for the given
// command-line arguments (without the program name).
//
// Overrides are collected from flags and KARAOKE_* environment variables
// (flags win), the platform directories are resolved and created, and the
// result is passed to [Resolve].
//
// Returns the resolved *Configuration or an error if any step fails; no
// partial configuration is ever returned.
func GetConfig(args []string, log *logger.Logger) (*Configuration, error) {
	overrides, err := newOverridesBuilder().
		withFlags(args).
		withEnv().
		build()
	if err != nil {
		return nil, err
	}

	paths, err := ResolvePaths(NewPlatformResolver())
	if err != nil {
		return nil, err
	}

	return Resolve(paths, *overrides, log)
}

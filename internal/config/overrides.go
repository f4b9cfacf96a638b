// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Overrides is the runtime layer of configuration resolution. Every field is
// optional: nil means "not supplied" and leaves the merged value untouched.
// SongFormat and Player have no override and can only be set in the config
// file.
//
// Struct tags:
//   - env: environment variable name, looked up with the KARAOKE_ prefix
//     (caarlos0/env).
type Overrides struct {
	// ConfigFile is an explicit config file path used instead of the
	// platform default.
	// Env: KARAOKE_CONFIG
	ConfigFile *string `env:"CONFIG"`

	// SongPath replaces Configuration.SongPath.
	// Env: KARAOKE_SONG_PATH
	SongPath *string `env:"SONG_PATH"`

	// DataPath replaces Configuration.DataPath.
	// Env: KARAOKE_DATA_PATH
	DataPath *string `env:"DATA_PATH"`

	// RefreshCollection requests a library rescan on startup. It is stored
	// inverted: Configuration.NoCollectionUpdate = !RefreshCollection.
	// Env: KARAOKE_REFRESH_COLLECTION
	RefreshCollection *bool `env:"REFRESH_COLLECTION"`

	// UseWebPlayer replaces Configuration.UseWebPlayer.
	// Env: KARAOKE_USE_WEB_PLAYER
	UseWebPlayer *bool `env:"USE_WEB_PLAYER"`

	// Port replaces Configuration.Port.
	// Env: KARAOKE_PORT
	Port *uint16 `env:"PORT"`

	// PortWS replaces Configuration.PortWS.
	// Env: KARAOKE_PORT_WS
	PortWS *uint16 `env:"PORT_WS"`
}

// Apply writes every supplied override onto cfg. Absent overrides leave the
// corresponding field as it is. ConfigFile only selects the file to read and
// is not applied here.
func (o Overrides) Apply(cfg *Configuration) {
	if o.SongPath != nil {
		cfg.SongPath = *o.SongPath
	}
	if o.DataPath != nil {
		cfg.DataPath = *o.DataPath
	}
	if o.RefreshCollection != nil {
		cfg.NoCollectionUpdate = !*o.RefreshCollection
	}
	if o.UseWebPlayer != nil {
		cfg.UseWebPlayer = *o.UseWebPlayer
	}
	if o.Port != nil {
		cfg.Port = *o.Port
	}
	if o.PortWS != nil {
		cfg.PortWS = *o.PortWS
	}
}

// configFile returns the explicit config path if one was supplied, or def.
func (o Overrides) configFile(def string) string {
	if o.ConfigFile != nil {
		return *o.ConfigFile
	}
	return def
}

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_FileAbsentReturnsDefaults(t *testing.T) {
	paths := testPaths(t)
	defaults := Default(paths)

	cfg, err := Merge(defaults, paths.ConfigFile)

	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestMerge_DirectoryAtPathReturnsDefaults(t *testing.T) {
	defaults := Default(testPaths(t))

	cfg, err := Merge(defaults, t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestMerge_PartialFile(t *testing.T) {
	// Arrange
	defaults := Default(testPaths(t))
	p := writeConfigFile(t, "port: 9999\n")

	// Act
	cfg, err := Merge(defaults, p)

	// Assert
	require.NoError(t, err)
	want := defaults
	want.Port = 9999
	assert.Equal(t, want, cfg)
}

func TestMerge_FileWinsOverDefaults(t *testing.T) {
	// Arrange
	defaults := Default(testPaths(t))
	p := writeConfigFile(t, `
song_path: /music
data_path: /var/lib/karaoke
no_collection_update: true
use_web_player: true
port: 9090
port_ws: 9091
song_format: "[Artist] - [Title]"
player:
  fullscreen: true
  scale: 2.25
  disable_background: true
`)

	// Act
	cfg, err := Merge(defaults, p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Configuration{
		SongPath:           "/music",
		DataPath:           "/var/lib/karaoke",
		NoCollectionUpdate: true,
		UseWebPlayer:       true,
		Port:               9090,
		PortWS:             9091,
		SongFormat:         "[Artist] - [Title]",
		Player: PlayerConfig{
			Fullscreen:        true,
			Scale:             2.25,
			DisableBackground: true,
		},
	}, cfg)
}

func TestMerge_ExplicitFalseOverridesDefault(t *testing.T) {
	defaults := Default(testPaths(t))
	defaults.UseWebPlayer = true
	p := writeConfigFile(t, "use_web_player: false\n")

	cfg, err := Merge(defaults, p)

	require.NoError(t, err)
	assert.False(t, cfg.UseWebPlayer)
}

func TestMerge_PartialPlayerSection(t *testing.T) {
	defaults := Default(testPaths(t))
	p := writeConfigFile(t, "player:\n  fullscreen: true\n")

	cfg, err := Merge(defaults, p)

	require.NoError(t, err)
	assert.True(t, cfg.Player.Fullscreen)
	assert.Equal(t, 1.5, cfg.Player.Scale)
	assert.False(t, cfg.Player.DisableBackground)
}

func TestMerge_UnknownKeysIgnored(t *testing.T) {
	defaults := Default(testPaths(t))
	p := writeConfigFile(t, "theme: dark\nport: 7000\nplayer:\n  vsync: true\n")

	cfg, err := Merge(defaults, p)

	require.NoError(t, err)
	want := defaults
	want.Port = 7000
	assert.Equal(t, want, cfg)
}

func TestMerge_EmptyFileReturnsDefaults(t *testing.T) {
	defaults := Default(testPaths(t))
	p := writeConfigFile(t, "")

	cfg, err := Merge(defaults, p)

	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
}

func TestMerge_DecodeFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "port is not a number",
			body: "port: \"not-a-number\"\n",
		},
		{
			name: "port out of 16-bit range",
			body: "port_ws: 70000\n",
		},
		{
			name: "bool of wrong type",
			body: "use_web_player: [1, 2]\n",
		},
		{
			name: "nested field of wrong type",
			body: "player:\n  scale: big\n",
		},
		{
			name: "invalid syntax",
			body: "port: [9090\n",
		},
		{
			name: "valid field does not rescue wrong one",
			body: "port: 9090\nport_ws: nope\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			p := writeConfigFile(t, tt.body)

			// Act
			cfg, err := Merge(Default(testPaths(t)), p)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDecodeFailure)
			assert.Equal(t, Configuration{}, cfg)
		})
	}
}

func TestMerge_NeverRewritesFile(t *testing.T) {
	body := "port: 9090\n"
	p := writeConfigFile(t, body)

	_, err := Merge(Default(testPaths(t)), p)
	require.NoError(t, err)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))
}

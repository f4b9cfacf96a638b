package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverrides_Apply_NoneLeavesConfigUntouched(t *testing.T) {
	cfg := Default(testPaths(t))
	cfg.NoCollectionUpdate = true
	want := cfg

	Overrides{}.Apply(&cfg)

	assert.Equal(t, want, cfg)
}

func TestOverrides_Apply_AllFields(t *testing.T) {
	cfg := Default(testPaths(t))
	o := Overrides{
		ConfigFile:        ptr("/ignored/config.yaml"),
		SongPath:          ptr("/songs"),
		DataPath:          ptr("/data"),
		RefreshCollection: ptr(true),
		UseWebPlayer:      ptr(true),
		Port:              ptr[uint16](8000),
		PortWS:            ptr[uint16](9090),
	}

	o.Apply(&cfg)

	assert.Equal(t, "/songs", cfg.SongPath)
	assert.Equal(t, "/data", cfg.DataPath)
	assert.False(t, cfg.NoCollectionUpdate)
	assert.True(t, cfg.UseWebPlayer)
	assert.Equal(t, uint16(8000), cfg.Port)
	assert.Equal(t, uint16(9090), cfg.PortWS)
	assert.Equal(t, DefaultSongFormat, cfg.SongFormat)
	assert.Equal(t, DefaultPlayerScale, cfg.Player.Scale)
}

func TestOverrides_Apply_RefreshCollectionIsInverted(t *testing.T) {
	tests := []struct {
		name    string
		merged  bool
		refresh *bool
		want    bool
	}{
		{name: "refresh true clears flag", merged: true, refresh: ptr(true), want: false},
		{name: "refresh false sets flag", merged: false, refresh: ptr(false), want: true},
		{name: "absent keeps merged true", merged: true, refresh: nil, want: true},
		{name: "absent keeps merged false", merged: false, refresh: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Configuration{NoCollectionUpdate: tt.merged}

			Overrides{RefreshCollection: tt.refresh}.Apply(&cfg)

			assert.Equal(t, tt.want, cfg.NoCollectionUpdate)
		})
	}
}

func TestOverrides_Apply_ZeroValuesStillOverride(t *testing.T) {
	cfg := Default(testPaths(t))
	cfg.UseWebPlayer = true

	Overrides{UseWebPlayer: ptr(false), Port: ptr[uint16](0), SongPath: ptr("")}.Apply(&cfg)

	assert.False(t, cfg.UseWebPlayer)
	assert.Zero(t, cfg.Port)
	assert.Empty(t, cfg.SongPath)
}

func TestOverrides_ConfigFile(t *testing.T) {
	assert.Equal(t, "/default.yaml", Overrides{}.configFile("/default.yaml"))
	assert.Equal(t, "/explicit.yaml", Overrides{ConfigFile: ptr("/explicit.yaml")}.configFile("/default.yaml"))
}

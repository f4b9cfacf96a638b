package config

// Built-in values of the default layer.
const (
	DefaultPort        uint16  = 8080
	DefaultPortWS      uint16  = 9000
	DefaultSongFormat          = "[*] - [Artist] - [Title]"
	DefaultPlayerScale float64 = 1.5
)

// Default returns the built-in configuration for the given resolution
// context. Both path fields are always taken from paths.
func Default(paths Paths) Configuration {
	return Configuration{
		SongPath:           paths.SongDir,
		DataPath:           paths.DataDir,
		NoCollectionUpdate: false,
		UseWebPlayer:       false,
		Port:               DefaultPort,
		PortWS:             DefaultPortWS,
		SongFormat:         DefaultSongFormat,
		Player: PlayerConfig{
			Fullscreen:        false,
			Scale:             DefaultPlayerScale,
			DisableBackground: false,
		},
	}
}

package config

import "github.com/MKhiriev/karaoke/internal/logger"

// Resolve produces the final [Configuration] from the three precedence
// layers: the defaults built from paths, the config file, and o.
//
// The config file is o.ConfigFile when supplied, otherwise paths.ConfigFile.
// It is created from the defaults if missing, then merged on top of them,
// and finally the overrides are applied. Any bootstrap or merge error is
// returned unchanged and no configuration is produced.
func Resolve(paths Paths, o Overrides, log *logger.Logger) (*Configuration, error) {
	configFile := o.configFile(paths.ConfigFile)
	log.Info().Str("path", configFile).Msg("using config file")

	defaults := Default(paths)

	created, err := Bootstrap(configFile, defaults)
	if err != nil {
		return nil, err
	}
	if created {
		log.Info().Str("path", configFile).Msg("default config file written")
	}

	cfg, err := Merge(defaults, configFile)
	if err != nil {
		return nil, err
	}

	o.Apply(&cfg)

	log.Info().Str("song_path", cfg.SongPath).Msg("using song dir")
	log.Info().Str("data_path", cfg.DataPath).Msg("using data dir")
	log.Info().Bool("refresh", !cfg.NoCollectionUpdate).Msg("collection to be refreshed")
	log.Info().Bool("use_web_player", cfg.UseWebPlayer).Msg("use web player")
	if cfg.Port == cfg.PortWS {
		log.Warn().Uint16("port", cfg.Port).Msg("http and websocket servers share a port")
	}

	return &cfg, nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/karaoke/internal/config"
	"github.com/MKhiriev/karaoke/internal/logger"
	"github.com/MKhiriev/karaoke/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewConsoleLogger("karaoke")
	log.Debug().Object("build", buildInfo).Msg("starting")

	cfg, err := config.GetConfig(os.Args[1:], log)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

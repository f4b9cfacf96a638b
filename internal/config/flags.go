package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
)

// PortValue holds a 16-bit TCP port parsed from the command line.
// It implements the flag.Value interface.
type PortValue uint16

// String returns the decimal form of the port.
func (p *PortValue) String() string {
	if p == nil {
		return "0"
	}
	return strconv.FormatUint(uint64(*p), 10)
}

// Set parses s as a decimal port number in the range 0-65535.
func (p *PortValue) Set(s string) error {
	port, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return errors.New("port must be an integer between 0 and 65535")
	}

	*p = PortValue(port)
	return nil
}

// ParseFlags parses the command-line arguments (without the program name)
// into an [Overrides] set. Only flags that are explicitly passed become
// overrides; everything else stays nil.
//
// Flags:
//
//	-c/-config config file path
//	-s/-songs song library directory
//	-d/-data data directory
//	-r/-refresh-collection rescan the song library on startup
//	-w/-use-web-player use the browser-based player
//	-p/-port HTTP server port
//	-ws-port WebSocket server port
//
// Returns an error wrapping [ErrInvalidOverride] on unknown flags or invalid
// values. For -h/-help the error also wraps [flag.ErrHelp].
func ParseFlags(args []string) (*Overrides, error) {
	var configFile, songPath, dataPath string
	var refreshCollection, useWebPlayer bool
	var port, portWS PortValue

	fs := flag.NewFlagSet("karaoke", flag.ContinueOnError)
	fs.StringVar(&configFile, "c", "", "Config file path")
	fs.StringVar(&configFile, "config", "", "Config file path (alias)")
	fs.StringVar(&songPath, "s", "", "Song library directory")
	fs.StringVar(&songPath, "songs", "", "Song library directory (alias)")
	fs.StringVar(&dataPath, "d", "", "Data directory")
	fs.StringVar(&dataPath, "data", "", "Data directory (alias)")
	fs.BoolVar(&refreshCollection, "r", false, "Refresh the song collection on startup")
	fs.BoolVar(&refreshCollection, "refresh-collection", false, "Refresh the song collection on startup (alias)")
	fs.BoolVar(&useWebPlayer, "w", false, "Use the web player")
	fs.BoolVar(&useWebPlayer, "use-web-player", false, "Use the web player (alias)")
	fs.Var(&port, "p", "HTTP server port")
	fs.Var(&port, "port", "HTTP server port (alias)")
	fs.Var(&portWS, "ws-port", "WebSocket server port")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: error parsing flags: %w", ErrInvalidOverride, err)
	}

	overrides := &Overrides{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "c", "config":
			overrides.ConfigFile = &configFile
		case "s", "songs":
			overrides.SongPath = &songPath
		case "d", "data":
			overrides.DataPath = &dataPath
		case "r", "refresh-collection":
			overrides.RefreshCollection = &refreshCollection
		case "w", "use-web-player":
			overrides.UseWebPlayer = &useWebPlayer
		case "p", "port":
			overrides.Port = (*uint16)(&port)
		case "ws-port":
			overrides.PortWS = (*uint16)(&portWS)
		}
	})

	return overrides, nil
}

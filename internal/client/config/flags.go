package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/keywarden/internal/flagx"
)

// parseFlags populates CLI Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   address:port of the backend gRPC endpoint
//	-t int      per-request timeout, seconds
//
// os.Args is filtered to the recognized flags first so the JSON-selection
// flags handled elsewhere do not trip the parser.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "address and port of the server")

	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/keywarden/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s int      SRP session TTL, minutes
//	-f int      forgot-token TTL, minutes
//	-t int      forgot-token tries
//	-r float    session-confirmation sample rate [0,1]
//	-b string   abuse-detection service endpoint
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-f", "-t", "-r", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	srpSessionTTL := fs.Int("s", int(config.SRPSessionTTL.Minutes()), "srp_session_ttl (in minutes)")
	forgotTokenTTL := fs.Int("f", int(config.ForgotTokenTTL.Minutes()), "forgot_token_ttl (in minutes)")

	fs.IntVar(&config.ForgotTokenTries, "t", config.ForgotTokenTries, "forgot token tries")
	fs.Float64Var(&config.ConfirmSampleRate, "r", config.ConfirmSampleRate, "confirmation sample rate")
	fs.StringVar(&config.BlockerEndpoint, "b", config.BlockerEndpoint, "abuse-detection endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SRPSessionTTL = time.Duration(*srpSessionTTL) * time.Minute
	config.ForgotTokenTTL = time.Duration(*forgotTokenTTL) * time.Minute
}

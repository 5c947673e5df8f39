package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/keywarden/internal/flagx"
	"github.com/dmitrijs2005/keywarden/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "15m" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrGRPC       string         `json:"endpoint_addr_grpc"`
	DatabaseDSN            string         `json:"database_dsn"`
	SRPSessionTTL          timex.Duration `json:"srp_session_ttl"`
	ForgotTokenTTL         timex.Duration `json:"forgot_token_ttl"`
	ForgotTokenTries       int            `json:"forgot_token_tries"`
	ConfirmSessionsEnabled *bool          `json:"confirm_sessions_enabled"`
	ConfirmSampleRate      *float64       `json:"confirm_sample_rate"`
	MinPasswordScore       *int           `json:"min_password_score"`
	BlockerEndpoint        string         `json:"blocker_endpoint"`
	CASMaxAttempts         int            `json:"cas_max_attempts"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics: a broken config file must not
// start a half-configured server.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SRPSessionTTL.Duration != 0 {
		config.SRPSessionTTL = c.SRPSessionTTL.Duration
	}
	if c.ForgotTokenTTL.Duration != 0 {
		config.ForgotTokenTTL = c.ForgotTokenTTL.Duration
	}
	if c.ForgotTokenTries != 0 {
		config.ForgotTokenTries = c.ForgotTokenTries
	}
	if c.ConfirmSessionsEnabled != nil {
		config.ConfirmSessionsEnabled = *c.ConfirmSessionsEnabled
	}
	if c.ConfirmSampleRate != nil {
		config.ConfirmSampleRate = *c.ConfirmSampleRate
	}
	if c.MinPasswordScore != nil {
		config.MinPasswordScore = *c.MinPasswordScore
	}
	if c.BlockerEndpoint != "" {
		config.BlockerEndpoint = c.BlockerEndpoint
	}
	if c.CASMaxAttempts != 0 {
		config.CASMaxAttempts = c.CASMaxAttempts
	}
}

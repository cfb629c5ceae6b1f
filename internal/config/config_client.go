package config

import (
	"flag"
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base address, e.g. "localhost:8080".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	// LogLevel is the minimal log level. Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// GetClientConfig builds and validates the client configuration from the
// environment and args. Flags override environment values. The remaining
// positional arguments (the client sub-command) are returned alongside.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{
		Adapter:  ClientAdapter{HTTPAddress: DefaultHTTPAddress, RequestTimeout: DefaultRequestTimeout},
		LogLevel: "warn",
	}
	if err := parseEnv(cfg); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("go-auth-client", flag.ContinueOnError)
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", cfg.Adapter.HTTPAddress, "Server address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", cfg.Adapter.RequestTimeout, "Request timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}

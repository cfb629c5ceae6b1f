package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server flags from os.Args.
//
// Flags:
//
//	-a               HTTP server address in format [host]:port
//	-grpc-address    gRPC health server address in format [host]:port
//	-driver          storage driver (postgres, sqlite)
//	-d               database DSN
//	-c/-config       JSON file path with configs
//	-token-sign-key  token signing key
//	-token-issuer    token issuer name
//	-token-duration  default token duration (e.g., "15m")
//	-login-token-duration  login token duration (e.g., "1h")
//	-api-key-ttl     API key lifetime (e.g., "8760h")
//	-request-timeout request timeout (e.g., "30s")
//	-log-level       log level
func ParseFlags() *StructuredConfig {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		// flag.ExitOnError already reported the problem
		os.Exit(2)
	}

	return cfg
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress, grpcServerAddress NetAddress

		cfg StructuredConfig
	)

	fs := flag.NewFlagSet("go-auth-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "HTTP net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "gRPC net address host:port")
	fs.StringVar(&cfg.Storage.DB.Driver, "driver", "", "Storage driver (postgres, sqlite)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Default token duration (e.g., 15m)")
	fs.DurationVar(&cfg.App.APIKeyTTL, "api-key-ttl", 0, "API key lifetime (e.g., 8760h)")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "bcrypt cost")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// A zero NetAddress yields an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the NetAddress.
// An empty host means all interfaces; any other host must be "localhost" or a
// valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

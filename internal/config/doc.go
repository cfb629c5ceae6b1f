// Package config loads the go-auth-keeper configuration.
//
// Values come from built-in defaults, environment variables
// (github.com/caarlos0/env), an optional JSON file and command-line flags.
// Sources are merged with dario.cat/mergo in that order, each later source
// overriding the non-zero fields of the earlier ones, and the result is
// validated before it is handed to the application.
//
// A missing token signing key is a fatal configuration error: the server must
// refuse to start rather than sign tokens with an empty secret.
package config

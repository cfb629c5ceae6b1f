package client

import "errors"

var (
	ErrNilAdapter       = errors.New("server adapter is nil")
	ErrNoCommand        = errors.New("no command given")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArguments = errors.New("missing arguments")
	ErrNoCredentials    = errors.New("either -token or -username and -password are required")
)

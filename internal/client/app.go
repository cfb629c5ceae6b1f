package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

const (
	cmdLogin   = "login"
	cmdAPIKey  = "api-key"
	cmdConvert = "convert"
	cmdHealth  = "health"
	cmdLog     = "log"
)

type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer

	logger *logger.Logger
}

// NewApp constructs the client application. Command results are written to
// out as indented JSON.
func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNilAdapter
	}

	return &App{adapter: serverAdapter, out: out, logger: logger}, nil
}

// Run dispatches args[0] to the matching command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug().Str("command", cmd).Msg("running client command")

	switch cmd {
	case cmdLogin:
		return a.login(ctx, rest)
	case cmdAPIKey:
		return a.issueAPIKey(ctx, rest)
	case cmdConvert:
		return a.convert(ctx, rest)
	case cmdHealth:
		return a.health(ctx)
	case cmdLog:
		return a.createLogEntry(ctx, rest)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: usage: %s <username> <password>", ErrMissingArguments, cmdLogin)
	}

	resp, err := a.adapter.Login(ctx, args[0], args[1])
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	return a.print(resp)
}

func (a *App) issueAPIKey(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(cmdAPIKey, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	token := fs.String("token", "", "Bearer token of an administrator")
	username := fs.String("username", "", "Administrator login, used when -token is empty")
	password := fs.String("password", "", "Administrator password, used when -token is empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("%w: usage: %s [flags] <user_id> [permission ...]", ErrMissingArguments, cmdAPIKey)
	}

	switch {
	case *token != "":
		a.adapter.SetToken(*token)
	case *username != "" && *password != "":
		if _, err := a.adapter.Login(ctx, *username, *password); err != nil {
			return fmt.Errorf("login: %w", err)
		}
	default:
		return ErrNoCredentials
	}

	// an explicit empty list is sent rather than null
	permissions := append([]string{}, fs.Args()[1:]...)

	grant, err := a.adapter.IssueAPIKey(ctx, fs.Arg(0), permissions)
	if err != nil {
		return fmt.Errorf("issue api key: %w", err)
	}

	return a.print(grant)
}

func (a *App) convert(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: usage: %s <timestamp> <source_tz> <target_tz>", ErrMissingArguments, cmdConvert)
	}

	resp, err := a.adapter.ConvertTimestamp(ctx, models.TimestampConversionRequest{
		SourceTimestamp: args[0],
		SourceTZ:        args[1],
		TargetTZ:        args[2],
	})
	if err != nil {
		return fmt.Errorf("convert timestamp: %w", err)
	}

	return a.print(resp)
}

func (a *App) health(ctx context.Context) error {
	resp, err := a.adapter.Health(ctx)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}

	return a.print(resp)
}

func (a *App) createLogEntry(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(cmdLog, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	description := fs.String("description", "", "Free-form description")
	conversionRequestID := fs.String("conversion-request-id", "", "Related conversion request ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("%w: usage: %s [flags] <action>", ErrMissingArguments, cmdLog)
	}

	req := models.CreateLogEntryRequest{Action: fs.Arg(0)}
	if *description != "" {
		req.Description = description
	}
	if *conversionRequestID != "" {
		req.ConversionRequestID = conversionRequestID
	}

	resp, err := a.adapter.CreateLogEntry(ctx, req)
	if err != nil {
		return fmt.Errorf("create log entry: %w", err)
	}

	return a.print(resp)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

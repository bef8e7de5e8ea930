package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/expense-tracker/internal/adapter"
	"github.com/MKhiriev/expense-tracker/internal/logger"
)

type command struct {
	usage      string
	authorized bool
	run        func(ctx context.Context, args []string) error
}

// App is the command-line client.
type App struct {
	adapter  adapter.ServerAdapter
	tokens   TokenStore
	password PasswordReader

	out    io.Writer
	errOut io.Writer

	now    func() time.Time
	logger *logger.Logger
}

// NewApp builds an [App]. Command output is written to out, usage and flag
// errors to errOut.
func NewApp(serverAdapter adapter.ServerAdapter, tokens TokenStore, password PasswordReader, out, errOut io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:  serverAdapter,
		tokens:   tokens,
		password: password,
		out:      out,
		errOut:   errOut,
		now:      time.Now,
		logger:   logger,
	}
}

func (a *App) commands() map[string]command {
	return map[string]command{
		"signup":     {usage: "signup -name NAME -email EMAIL [-password PASSWORD]", run: a.signUp},
		"login":      {usage: "login -email EMAIL [-password PASSWORD]", run: a.login},
		"logout":     {usage: "logout", run: a.logout},
		"list":       {usage: "list", authorized: true, run: a.list},
		"add":        {usage: "add -category CATEGORY -amount AMOUNT -description TEXT [-date YYYY-MM-DD]", authorized: true, run: a.add},
		"get":        {usage: "get ID", authorized: true, run: a.get},
		"delete":     {usage: "delete ID", authorized: true, run: a.delete},
		"delete-all": {usage: "delete-all", authorized: true, run: a.deleteAll},
		"health":     {usage: "health", run: a.health},
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return fmt.Errorf("%w: command", ErrMissingArgument)
	}

	name := args[0]
	if name == "help" || name == "-h" || name == "--help" {
		a.printUsage()
		return nil
	}

	cmd, ok := a.commands()[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	if cmd.authorized {
		token, err := a.tokens.Load()
		if err != nil {
			return err
		}
		if token == "" {
			return fmt.Errorf("%w: run login first", adapter.ErrNotLoggedIn)
		}
		a.adapter.SetToken(token)
	}

	a.logger.Debug().Str("command", name).Msg("running command")

	err := cmd.run(ctx, args[1:])
	if cmd.authorized && errors.Is(err, adapter.ErrUnauthorized) {
		if clearErr := a.tokens.Clear(); clearErr != nil {
			a.logger.Warn().Err(clearErr).Msg("failed to clear rejected token")
		}
		return fmt.Errorf("%w (session cleared, run login again)", err)
	}

	return err
}

func (a *App) printUsage() {
	commands := a.commands()
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.errOut, "usage: expense-client COMMAND [ARGS]")
	fmt.Fprintln(a.errOut, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.errOut, "  %s\n", commands[name].usage)
	}
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

// passwordOrPrompt returns the flag value when set, otherwise asks for it.
func (a *App) passwordOrPrompt(value string) (string, error) {
	if value != "" {
		return value, nil
	}
	return a.password.ReadPassword("Password: ")
}

func requireFlags(values map[string]string) error {
	var missing []string
	for name, value := range values {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, "-"+name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	return fmt.Errorf("%w: %s", ErrMissingArgument, strings.Join(missing, ", "))
}

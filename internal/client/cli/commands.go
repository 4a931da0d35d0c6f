package cli

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/dmitrijs2005/krishi/internal/common"
)

// command is one entry of the dispatch table.
type command struct {
	run        func(a *App, ctx context.Context, args []string) error
	needsLogin bool
	// helpKey is the catalog key of the one-line description.
	helpKey string
}

func commandTable() map[string]command {
	exit := command{run: (*App).Exit, helpKey: "help_exit"}
	return map[string]command{
		"help":    {run: (*App).Help, helpKey: "help_help"},
		"signup":  {run: (*App).Signup, helpKey: "help_signup"},
		"login":   {run: (*App).Login, helpKey: "help_login"},
		"logout":  {run: (*App).Logout, needsLogin: true, helpKey: "help_logout"},
		"whoami":  {run: (*App).WhoAmI, needsLogin: true, helpKey: "help_whoami"},
		"session": {run: (*App).Session, helpKey: "help_session"},
		"lang":    {run: (*App).Lang, helpKey: "help_lang"},
		"t":       {run: (*App).Translate, helpKey: "help_t"},
		"color":   {run: (*App).Color, helpKey: "help_color"},
		"log":     {run: (*App).Log, helpKey: "help_log"},
		"exit":    exit,
		"quit":    exit,
	}
}

// dispatch runs the named command. Failures are printed and swallowed so
// the REPL keeps going; only errExit is passed back.
func (a *App) dispatch(ctx context.Context, name string, args []string) error {
	cmd, ok := a.commands[name]
	if !ok {
		a.println(a.lang.TranslateParams("unknown_command", map[string]string{"command": name}))
		return nil
	}
	if cmd.needsLogin && !a.sessionAlive(ctx) {
		a.println(a.lang.T("not_logged_in"))
		return nil
	}

	err := cmd.run(a, ctx, args)
	switch {
	case err == nil:
	case errors.Is(err, errExit):
		return err
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrInvalidCredentials):
		a.println(err.Error())
	default:
		a.logger.Error(ctx, "CLI: command failed", "command", name, "error", err)
		a.println("Error:", err)
	}
	return nil
}

// sessionAlive re-checks the stored session for commands that need a login.
// An expired or rejected session drops the cached user.
func (a *App) sessionAlive(ctx context.Context) bool {
	if !a.isLoggedIn() {
		return false
	}
	_, ok, err := a.auth.HasValidSession(ctx)
	if err != nil {
		a.logger.Warn(ctx, "CLI: session check failed", "error", err)
	}
	if !ok {
		a.user = nil
	}
	return ok
}

// Help lists the commands available in the current state.
func (a *App) Help(ctx context.Context, args []string) error {
	names := make([]string, 0, len(a.commands))
	for name, cmd := range a.commands {
		if name == "quit" || (cmd.needsLogin && !a.isLoggedIn()) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	a.println(a.lang.T("available_commands"))
	for _, name := range names {
		a.println("  " + padRight(name, 8) + a.lang.T(a.commands[name].helpKey))
	}
	return nil
}

func (a *App) Exit(ctx context.Context, args []string) error {
	a.println(a.lang.T("goodbye"))
	return errExit
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}

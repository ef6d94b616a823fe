// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

const usage = `usage: todo [-server URL] [-timeout D] [-token-file PATH] <command> [args]

commands:
  signup -email E -name N [-password P]   create an account
  signin -email E [-password P]           sign in and store the token
  signout                                 forget the stored token
  add <title>                             create a todo
  list                                    list your todos
  done [-undo] <id>                       mark a todo as done (or not done)
  rename <id> <title>                     change the title of a todo
  rm <id>                                 delete a todo
  version                                 print the server version
`

type command func(ctx context.Context, args []string) error

type App struct {
	adapter   adapter.ServerAdapter
	tokens    TokenStore
	passwords PasswordReader
	out       io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, tokens TokenStore, passwords PasswordReader, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter:   serverAdapter,
		tokens:    tokens,
		passwords: passwords,
		out:       out,
		logger:    logger,
	}

	a.commands = map[string]command{
		"signup":  a.signUp,
		"signin":  a.signIn,
		"signout": a.signOut,
		"add":     a.add,
		"list":    a.list,
		"done":    a.done,
		"rename":  a.rename,
		"rm":      a.remove,
		"version": a.version,
	}

	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		fmt.Fprint(a.out, usage)
		return nil
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")

	return cmd(ctx, args[1:])
}

func (a *App) signUp(ctx context.Context, args []string) error {
	fs := a.flagSet("signup")
	email := fs.String("email", "", "account email")
	name := fs.String("name", "", "display name")
	password := fs.String("password", "", "password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pw, err := a.passwordOrPrompt(*password)
	if err != nil {
		return err
	}

	err = a.adapter.SignUp(ctx, models.SignUpRequest{Email: *email, Password: pw, Name: *name})
	var formatErr *adapter.FormatError
	if errors.As(err, &formatErr) {
		for _, issue := range formatErr.Issues {
			fmt.Fprintf(a.out, "  %s: %s\n", issue.Field, issue.Message)
		}
	}
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	fmt.Fprintln(a.out, "You are signed up. Run `signin` to get a token.")
	return nil
}

func (a *App) signIn(ctx context.Context, args []string) error {
	fs := a.flagSet("signin")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pw, err := a.passwordOrPrompt(*password)
	if err != nil {
		return err
	}

	token, err := a.adapter.SignIn(ctx, models.SignInRequest{Email: *email, Password: pw})
	if err != nil {
		return fmt.Errorf("signin failed: %w", err)
	}
	if err = a.tokens.Save(token); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Signed in.")
	return nil
}

func (a *App) signOut(_ context.Context, _ []string) error {
	if err := a.tokens.Clear(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

func (a *App) add(ctx context.Context, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return fmt.Errorf("%w: add <title>", ErrMissingArgs)
	}
	if err := a.authenticate(); err != nil {
		return err
	}

	id, err := a.adapter.CreateTodo(ctx, models.TodoCreate{Title: title})
	if err != nil {
		return fmt.Errorf("add failed: %w", err)
	}

	fmt.Fprintf(a.out, "Created %s\n", id)
	return nil
}

func (a *App) list(ctx context.Context, _ []string) error {
	if err := a.authenticate(); err != nil {
		return err
	}

	todos, err := a.adapter.ListTodos(ctx)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}
	if len(todos) == 0 {
		fmt.Fprintln(a.out, "No todos.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, todo := range todos {
		mark := " "
		if todo.Mark {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s]\t%s\t%s\n", mark, todo.Title, todo.ID)
	}
	return w.Flush()
}

func (a *App) done(ctx context.Context, args []string) error {
	fs := a.flagSet("done")
	undo := fs.Bool("undo", false, "mark as not done")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: done [-undo] <id>", ErrMissingArgs)
	}

	mark := !*undo
	return a.update(ctx, fs.Arg(0), models.TodoUpdate{Mark: &mark})
}

func (a *App) rename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: rename <id> <title>", ErrMissingArgs)
	}

	title := strings.Join(args[1:], " ")
	return a.update(ctx, args[0], models.TodoUpdate{Title: &title})
}

func (a *App) update(ctx context.Context, id string, update models.TodoUpdate) error {
	if err := a.authenticate(); err != nil {
		return err
	}

	todo, err := a.adapter.UpdateTodo(ctx, id, update)
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	fmt.Fprintf(a.out, "Updated %s: %q done=%t\n", todo.ID, todo.Title, todo.Mark)
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: rm <id>", ErrMissingArgs)
	}
	if err := a.authenticate(); err != nil {
		return err
	}

	if err := a.adapter.DeleteTodo(ctx, args[0]); err != nil {
		return fmt.Errorf("rm failed: %w", err)
	}

	fmt.Fprintf(a.out, "Deleted %s\n", args[0])
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, v)
	return nil
}

// authenticate loads the stored token into the adapter.
func (a *App) authenticate() error {
	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNotSignedIn
	}

	a.adapter.SetToken(token)
	return nil
}

func (a *App) passwordOrPrompt(password string) (string, error) {
	if password != "" {
		return password, nil
	}
	return a.passwords.ReadPassword("Password: ")
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// Package cli is the terminal front-end: a sign-on prompt, a menu, and the
// user list / add / update / delete screens. All screen logic lives in the
// controllers; this package only reads input and renders.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"usermgmt/internal/client"
	"usermgmt/internal/client/session"
	"usermgmt/internal/domain/models"
)

type App struct {
	rl    *readline.Instance
	api   *client.Client
	store *session.Store

	// notice carries a message from one screen to the next, e.g. the
	// delete confirmation shown back on the list screen.
	notice string
}

func NewApp(baseURL, sessionPath string) (*App, error) {
	store := session.NewStore(sessionPath)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "usermgmt> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &App{
		rl:    rl,
		api:   client.New(baseURL, store),
		store: store,
	}, nil
}

func (a *App) Close() {
	_ = a.rl.Close()
}

// Run is the top-level loop: sign on, then the menu, until exit.
func (a *App) Run(ctx context.Context) error {
	for {
		user, ok := a.store.CurrentUser()
		if !ok {
			signedOn, err := a.signOnScreen(ctx)
			if err != nil {
				return exitOrErr(err)
			}
			if !signedOn {
				return nil
			}
			continue
		}

		if err := a.menuScreen(ctx, user); err != nil {
			return exitOrErr(err)
		}

		if _, still := a.store.CurrentUser(); !still {
			continue // signed off, back to the sign-on screen
		}
		return nil
	}
}

var errExit = errors.New("exit requested")

func exitOrErr(err error) error {
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return nil
	}
	return err
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.rl.Stdout(), format+"\n", args...)
}

// clock renders the screen header timestamp, refreshed on every render.
func clock() string {
	return time.Now().Format("01/02/06 15:04:05")
}

func (a *App) readLine(prompt string) (string, error) {
	a.rl.SetPrompt(prompt)
	line, err := a.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) readPassword(prompt string) (string, error) {
	pw, err := a.rl.ReadPassword(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(pw)), nil
}

func typeLabel(t string) string {
	return models.UserTypeLabel(t)
}

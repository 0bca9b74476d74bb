// Package cli implements the interactive terminal client for the notekeep
// API. The command loop reads one command per line and dispatches to the
// handlers in commands.go.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/avasiliev/notekeep/internal/client/api"
	"github.com/avasiliev/notekeep/internal/client/config"
)

// apiClient is the slice of the API client the commands need. Tests provide
// a fake.
type apiClient interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Logout()
	ListNotes(ctx context.Context) ([]api.Note, error)
	GetNote(ctx context.Context, id string) (*api.Note, error)
	CreateNote(ctx context.Context, title, content string) error
	UpdateNote(ctx context.Context, id string, title, content *string) error
	DeleteNote(ctx context.Context, id string) error
	SearchNotes(ctx context.Context, title, content string) ([]api.Note, error)
}

type App struct {
	config   *config.Config
	api      apiClient
	userName string
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to notekeep CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runLoop(ctx, a, a.getStatus, scanner, a.out)
}

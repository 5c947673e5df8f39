// Package cli implements the interactive keywarden command-line client: a
// small REPL over the auth service covering signup, login, email
// confirmation, key retrieval and the password lifecycle.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/keywarden/internal/client/client"
	"github.com/dmitrijs2005/keywarden/internal/client/config"
	"github.com/dmitrijs2005/keywarden/internal/client/services"
)

type App struct {
	config      *config.Config
	authService services.AuthService

	userName string
	creds    *services.Credentials
	keys     *services.AccountKeys

	reader *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewAuthClientService(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(apiClient)

	return &App{config: c, authService: as, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.creds != nil
}

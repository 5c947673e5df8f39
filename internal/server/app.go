// Package server initializes and runs the main application server.
// It opens the database, applies migrations, wires the service layer
// and starts the gRPC endpoint with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/keywarden/internal/logging"
	"github.com/dmitrijs2005/keywarden/internal/server/config"
	"github.com/dmitrijs2005/keywarden/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/keywarden/internal/server/repositories/srpsessions"
	"github.com/dmitrijs2005/keywarden/internal/server/services"

	gs "github.com/dmitrijs2005/keywarden/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	accountService *services.AccountService
	authService    *services.AuthService
	sessionService *services.SessionService
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	mailer := services.NewLogMailer(logger)

	var blocker services.Blocker
	if c.BlockerEndpoint != "" {
		blocker = services.NewHTTPBlocker(c.BlockerEndpoint)
	}

	as := services.NewAccountService(db, m, c, mailer, blocker)
	au := services.NewAuthService(db, m, c, srpsessions.NewInMemoryCache(), blocker)
	ss := services.NewSessionService(db, m, c, mailer)

	return &App{
		config:         c,
		logger:         logger,
		db:             db,
		accountService: as,
		authService:    au,
		sessionService: ss,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config, app.logger, app.accountService, app.authService, app.sessionService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

}

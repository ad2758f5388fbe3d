package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/geofield/borelog/internal/client/api"
	"github.com/geofield/borelog/internal/client/config"
	"github.com/geofield/borelog/internal/client/repositories/localstore"
	"github.com/geofield/borelog/internal/client/services"
	"github.com/geofield/borelog/internal/logging"
	"github.com/geofield/borelog/internal/rendertext"

	_ "modernc.org/sqlite"
)

// App wires the services behind the REPL and owns the interactive I/O.
type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	auth     *services.AuthService
	reports  *services.ReportsService
	drafts   *services.DraftService
	qa       *services.QAService
	insights *services.InsightsService
	users    *services.UsersService
	renderer *rendertext.Renderer
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := localstore.InitDatabase(ctx, c.StorePath)
	if err != nil {
		logger.Error(ctx, "initializing snapshot store", "error", err)
		return nil, err
	}

	repo := localstore.NewSQLiteRepository(db)
	apiClient := api.New(c.BaseURL, c.RequestTimeout)

	app := &App{
		config:   c,
		logger:   logger,
		db:       db,
		auth:     services.NewAuthService(apiClient, repo, logger),
		reports:  services.NewReportsService(apiClient, logger),
		drafts:   services.NewDraftService(repo, logger),
		qa:       services.NewQAService(apiClient, repo, logger),
		insights: services.NewInsightsService(apiClient, logger),
		users:    services.NewUsersService(apiClient, logger),
		renderer: rendertext.New(),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	apiClient.SetTokenSource(app.auth.Token)
	apiClient.SetUnauthorizedHandler(func() {
		// Token rejected by the server: drop the stale session so the next
		// prompt asks for credentials again.
		_ = app.auth.Teardown(context.Background())
		printlnFn("Session expired, please log in again.")
	})

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if session, ok, err := a.auth.Restore(ctx); err == nil && ok {
		printlnFn(fmt.Sprintf("Welcome back, %s", session.Email))
	}
	printlnFn("borelog field client (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.auth.LoggedIn()
}

func (a *App) isAdmin() bool {
	return a.auth.Current().IsAdmin()
}

func (a *App) getStatus() string {
	session := a.auth.Current()
	if !session.Valid() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", session.Email, session.Role)
}

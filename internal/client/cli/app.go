package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/portfolioadmin/internal/client/backup"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/client"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/config"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/models"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/services"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/session"
	"github.com/dmitrijs2005/portfolioadmin/internal/client/view"
	"github.com/dmitrijs2005/portfolioadmin/internal/logging"
)

// Backuper stores a dashboard snapshot and returns where it went.
type Backuper interface {
	Upload(ctx context.Context, snap *models.Snapshot) (string, error)
}

type App struct {
	config    *config.Config
	auth      services.AuthService
	portfolio services.PortfolioService
	backup    Backuper
	view      *view.View
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	db        *sql.DB
}

// NewApp opens the local state database and wires the API client, services
// and view for an interactive session on stdin/stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := session.NewSQLStore(db)
	api := client.NewHTTPClient(c.BaseURL, store, client.WithLogger(log.With("component", "api")))

	app := &App{
		config:    c,
		auth:      services.NewAuthService(api, store),
		portfolio: services.NewPortfolioService(api),
		view:      view.New(os.Stdout, c.ToastDuration),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		db:        db,
	}

	up, err := backup.NewUploader(c, nil)
	switch {
	case err == nil:
		app.backup = up
	case errors.Is(err, backup.ErrNotConfigured):
		log.Debug(ctx, "backup disabled")
	default:
		_ = db.Close()
		return nil, err
	}

	return app, nil
}

// Run restores the session, if any, and blocks in the REPL until the user
// exits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Portfolio Admin (type 'help' for commands)")
	a.checkAuthState(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.view.LoggedIn()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	s := string(a.view.Section())
	if sub := a.auth.Subject(context.Background()); sub != "" {
		s = sub + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// withLoading shows the loading indicator while fn runs and always hides it.
func (a *App) withLoading(ctx context.Context, fn func(ctx context.Context) error) error {
	a.view.ShowLoading(true)
	defer a.view.ShowLoading(false)
	return fn(ctx)
}

// fail logs err and shows msg as an error notice. Validation failures name
// the offending field.
func (a *App) fail(ctx context.Context, msg string, err error) error {
	a.log.Error(ctx, msg, "error", err)
	var fe *models.FieldError
	if errors.As(err, &fe) {
		msg = fmt.Sprintf("%s: %v", msg, fe)
	}
	a.view.ShowToast(msg, view.ToastError)
	return err
}

func (a *App) ok(msg string) {
	a.view.ShowToast(msg, view.ToastSuccess)
}

package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"time"

	"github.com/pietos/pietos-cli/internal/client"
	"github.com/pietos/pietos-cli/internal/config"
	"github.com/pietos/pietos-cli/internal/logging"
	"github.com/pietos/pietos-cli/internal/repositories/metadata"
	"github.com/pietos/pietos-cli/internal/services"
	"github.com/pietos/pietos-cli/internal/session"
	"github.com/pietos/pietos-cli/internal/storage"
	"github.com/pietos/pietos-cli/internal/verification"

	_ "modernc.org/sqlite"
)

// scheduleFn is a test seam for deferred cosmetic callbacks (the auth
// dialog auto-close). Production uses time.AfterFunc.
var scheduleFn = func(d time.Duration, f func()) { time.AfterFunc(d, f) }

// View names the two mutually exclusive pages of the client.
type View string

const (
	ViewMain      View = "main"
	ViewDashboard View = "dashboard"
)

type App struct {
	config    *config.Config
	store     *session.Store
	auth      services.AuthService
	dashboard services.DashboardService
	activity  services.ActivityService
	registry  *verification.Registry
	log       logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	view View

	// busy guards against a second submission of the same form while a
	// request is in flight.
	busy bool
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	store := session.NewStore(metadata.NewSQLiteRepository(db), log)
	api := client.NewHTTPClient(c.ServiceURL, log)

	activity := services.NewActivityService(api, store, log)

	registry := verification.NewRegistry()
	for _, s := range c.OpenServices {
		registry.Add(s, verification.KindAnonymous)
	}
	for _, s := range c.GatedServices {
		registry.Add(s, verification.KindAuthRequired)
	}

	return &App{
		config:    c,
		store:     store,
		auth:      services.NewAuthService(api, store, activity, log),
		dashboard: services.NewDashboardService(api, store, log),
		activity:  activity,
		registry:  registry,
		log:       log,
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		view:      ViewMain,
	}, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run restores any persisted session and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.store.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "err", err)
	}

	a.ShowMain()
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.store.Active()
}

func (a *App) getStatus() string {
	if u := a.store.User(); u.Name != "" {
		return "(" + u.Name + ")"
	}
	if a.store.Active() {
		return "(signed in)"
	}
	return ""
}

// beginSubmit marks the auth form as in-flight, printing the submit label
// the web client shows on its disabled button. The returned func restores
// the form and must run regardless of outcome.
func (a *App) beginSubmit(label string) (func(), bool) {
	if a.busy {
		return nil, false
	}
	a.busy = true
	a.println(label)
	return func() { a.busy = false }, true
}

package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"sync/atomic"

	"github.com/fitcoach/fitcoach/internal/client/api"
	"github.com/fitcoach/fitcoach/internal/client/config"
	"github.com/fitcoach/fitcoach/internal/client/session"
	"github.com/fitcoach/fitcoach/internal/client/tokenstore"
	"github.com/fitcoach/fitcoach/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Store
	guard   session.Guard
	tokens  tokenstore.Repository
	toast   *Toast
	log     logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	// viewGen advances on every command; async results compare against it
	// and are discarded when the view has moved on.
	viewGen atomic.Int64
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := tokenstore.InitDatabase(ctx, c.TokenDBPath)
	if err != nil {
		log.Error(ctx, "error initializing token database", "error", err)
		return nil, err
	}

	tokens := tokenstore.NewSQLiteRepository(db)
	apiClient := api.New(c.APIBaseURL, tokens, log)
	store := session.New(apiClient, tokens, log)

	return &App{
		config:  c,
		api:     apiClient,
		session: store,
		guard:   session.NewGuard(store),
		tokens:  tokens,
		toast:   NewToast(c.ToastDelay),
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run bootstraps the session from the persisted credential and enters the
// REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.session.Bootstrap(ctx)
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) guardState() session.State {
	return a.guard.State()
}

// currentView returns the generation token of the active view.
func (a *App) currentView() int64 {
	return a.viewGen.Load()
}

// nextView marks a view change, invalidating pending async results.
func (a *App) nextView() int64 {
	return a.viewGen.Add(1)
}

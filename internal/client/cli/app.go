// Package cli is the interactive presentation layer of the tempchat client.
// It is a thin collaborator over the store: every command invokes a store
// operation and renders its reactive state.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/dmitrijs2005/tempchat/internal/client/config"
	"github.com/dmitrijs2005/tempchat/internal/client/repositories/kv"
	"github.com/dmitrijs2005/tempchat/internal/client/storage"
	"github.com/dmitrijs2005/tempchat/internal/client/store"
	"github.com/dmitrijs2005/tempchat/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	store  *store.Store
	db     *sql.DB
	log    logging.Logger
	reader *bufio.Reader

	// snap is the latest store snapshot, refreshed by subscription after
	// every mutation. The REPL renders from it instead of re-querying.
	snap        store.Snapshot
	unsubscribe func()
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	st := store.New(kv.NewSQLiteRepository(db), log,
		store.WithRetentionWindow(c.RetentionWindow))

	if err := st.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &App{config: c, store: st, db: db, log: log, reader: bufio.NewReader(os.Stdin)}
	app.snap = st.Snapshot()
	app.unsubscribe = st.Subscribe(func(snap store.Snapshot) { app.snap = snap })

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close tears the app down: the subscription is removed before the database
// handle is released so no stale callback can observe a closed store.
func (a *App) Close() {
	a.unsubscribe()
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.snap.Session != nil
}

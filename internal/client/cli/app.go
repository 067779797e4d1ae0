// Package cli is the interactive terminal frontend of the deck editor: a
// small REPL over the editor session, with sqlite-backed draft autosave so
// unsaved work survives a restart.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/awarddeck/internal/client/api"
	"github.com/dmitrijs2005/awarddeck/internal/client/config"
	"github.com/dmitrijs2005/awarddeck/internal/client/drafts"
	"github.com/dmitrijs2005/awarddeck/internal/client/editor"
	"github.com/dmitrijs2005/awarddeck/internal/client/layout"
	"github.com/dmitrijs2005/awarddeck/internal/client/preview"
	"github.com/dmitrijs2005/awarddeck/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	session *editor.Session
	preview *preview.Preview
	layout  *layout.Editor
	drafts  drafts.Repository
	closeDB func() error
	scanner *bufio.Scanner
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewTextLogger(slog.LevelWarn)

	repo, db, err := drafts.Open(ctx, c.DraftDBPath)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.ServerEndpointAddr, c.APIToken, &http.Client{Timeout: c.RequestTimeout})

	session := editor.NewSession(apiClient, logger)
	session.Load(ctx)

	app := &App{
		config:  c,
		logger:  logger,
		session: session,
		preview: preview.NewPreview(session),
		layout:  layout.NewEditor(session),
		drafts:  repo,
		closeDB: db.Close,
		scanner: bufio.NewScanner(os.Stdin),
	}
	app.restoreDraft(ctx)
	return app, nil
}

// restoreDraft replaces the freshly loaded deck with a local draft when one
// was left behind by a previous session.
func (a *App) restoreDraft(ctx context.Context) {
	d, err := a.drafts.Load(ctx)
	if err != nil {
		a.logger.Warn(ctx, "failed to load draft", "error", err.Error())
		return
	}
	if d == nil {
		return
	}
	a.session.Restore(d.Deck, d.Categories, d.ActiveTab)
	printlnFn("Restored unsaved draft from", d.SavedAt.Format(time.RFC822))
}

// saveDraft autosaves the working copy after a mutating command.
func (a *App) saveDraft(ctx context.Context) {
	d := drafts.Draft{
		Deck:       a.session.Deck(),
		Categories: a.session.Categories(),
		ActiveTab:  a.session.ActiveTab(),
	}
	if err := a.drafts.Save(ctx, d); err != nil {
		a.logger.Warn(ctx, "failed to autosave draft", "error", err.Error())
	}
}

func (a *App) getStatus() string {
	active := a.session.Active()
	if active == nil {
		return ""
	}
	return fmt.Sprintf("(%d/%d %s)", a.session.ActiveTab()+1, len(a.session.Deck()), active.Label())
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.closeDB() }()

	printlnFn("awarddeck editor (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.scanner)
}

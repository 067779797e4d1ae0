// Package server initializes and runs the awarddeck API service: it connects
// the key-value store and object storage, wires the awardees service into the
// HTTP layer, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/awarddeck/internal/logging"
	"github.com/dmitrijs2005/awarddeck/internal/server/auth"
	"github.com/dmitrijs2005/awarddeck/internal/server/awardees"
	"github.com/dmitrijs2005/awarddeck/internal/server/blob"
	"github.com/dmitrijs2005/awarddeck/internal/server/config"
	"github.com/dmitrijs2005/awarddeck/internal/server/httpapi"
	"github.com/dmitrijs2005/awarddeck/internal/server/kvstore"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	httpSrv *httpapi.Server
	closeDB func() error
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger()

	store, db, err := kvstore.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	blobs, err := blob.NewS3Store(ctx, blob.S3Options{
		RootUser:     c.S3RootUser,
		RootPassword: c.S3RootPassword,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	if err := blobs.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("bucket init error: %w", err)
	}

	service := awardees.NewService(store, blobs, c.SignedURLTTL, logger)
	verifier := auth.NewVerifier(c.APIToken, c.JWTSecret)
	httpSrv := httpapi.NewServer(c.EndpointAddr, service, verifier, c.MaxUploadBytes, logger)

	return &App{config: c, logger: logger, httpSrv: httpSrv, closeDB: db.Close}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpSrv.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.closeDB(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}

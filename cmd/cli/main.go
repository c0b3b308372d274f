package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/challengehub/internal/buildinfo"
	"github.com/dmitrijs2005/challengehub/internal/client/api"
	"github.com/dmitrijs2005/challengehub/internal/client/cli"
	"github.com/dmitrijs2005/challengehub/internal/client/config"
	"github.com/dmitrijs2005/challengehub/internal/client/session"
	"github.com/dmitrijs2005/challengehub/internal/client/storage"
	"github.com/dmitrijs2005/challengehub/internal/client/transport"
	"github.com/dmitrijs2005/challengehub/internal/logging"
	"github.com/dmitrijs2005/challengehub/internal/netx"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Format, cfg.Log.Level, os.Stderr)
	if err != nil {
		return err
	}

	store, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	mgr := session.New(store,
		session.WithLogger(logger),
		session.WithLoginTimeout(cfg.LoginTimeout),
	)
	defer func() {
		if err := mgr.Dispose(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "dispose session", "error", err)
		}
	}()

	// The transport reads the token from storage on every request, so it
	// always sees what the session manager last persisted.
	tr, err := transport.New(
		transport.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.RequestTimeout},
		transport.WithTokenSource(session.NewStoredTokenSource(store)),
		transport.WithUnauthorizedHandler(mgr.HandleUnauthorized),
		transport.WithConnectivityCheck(netx.HasNetwork),
		transport.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	client := api.New(tr)
	if err := mgr.Init(ctx, client); err != nil {
		return err
	}

	cli.NewApp(mgr, client, logger).Run(ctx)
	return nil
}

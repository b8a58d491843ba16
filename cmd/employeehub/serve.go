package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"employeehub/internal/auth"
	"employeehub/internal/config"
	"employeehub/internal/http/handlers"
	applog "employeehub/internal/log"
	"employeehub/internal/payments"
	"employeehub/internal/repos"
	"employeehub/internal/services"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *cfg)
		},
	}
}

func serve(parent context.Context, cfg config.Config) error {
	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			applog.Error(nil, "log.file.open.fail", err, map[string]any{"path": cfg.LogFile})
		} else {
			defer f.Close()
			applog.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}
	applog.Info(nil, "config.loaded", cfg.Fields())
	if err := cfg.Validate(); err != nil {
		applog.Error(nil, "config.invalid", err, nil)
		return err
	}
	if cfg.StripeKey == "" {
		applog.Info(nil, "payments.disabled", map[string]any{"reason": "STRIPE_SECRET_KEY not set"})
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		applog.Error(nil, "db.open.fail", err, map[string]any{"dsn": cfg.DBDSN})
		return err
	}
	defer db.Close()

	authSvc := services.NewAuthService(auth.NewIssuer([]byte(cfg.TokenSecret), auth.TokenLifetime))
	bridge := payments.NewBridge(cfg.StripeBaseURL, cfg.StripeKey, cfg.ProcessorTimeout)
	app := handlers.NewApp(cfg, handlers.NewDeps(db, cfg, authSvc, bridge))

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		applog.Info(nil, "server.listen", map[string]any{"port": cfg.Port})
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	applog.Info(nil, "server.shutdown", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}

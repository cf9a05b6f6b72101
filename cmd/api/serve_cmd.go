package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"vet-clinic/internal/adapters/auth/remote"
	pg "vet-clinic/internal/adapters/storage/postgres"
	"vet-clinic/internal/config"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/platform/logger"
	"vet-clinic/internal/platform/tracing"
	"vet-clinic/internal/realtime"
	"vet-clinic/internal/router"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el API HTTP + websocket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(root)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg config.Config, log logger.Logger) error {
	shutdownTracing, err := tracing.Setup(ctx, cfg.AppName, cfg.OTLPEndpoint, cfg.AppEnv)
	if err != nil {
		return err
	}

	opts := router.Options{
		Logger:          log,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		NotifierTimeout: cfg.NotifierTimeout,
	}

	if strings.TrimSpace(cfg.DBDSN) != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		if cfg.DBAutoMigrate {
			if err := pg.Migrate(ctx, db); err != nil {
				return err
			}
		}
		opts.DB = db
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	if strings.TrimSpace(cfg.AuthVerifyURL) != "" {
		v, err := remote.NewVerifier(remote.Config{
			BaseURL: cfg.AuthVerifyURL,
			APIKey:  cfg.AuthAPIKey,
			Timeout: 5 * time.Second,
		})
		if err != nil {
			return err
		}
		opts.AuthVerifier = v
	} else {
		log.Warn("AUTH_VERIFY_URL not set, accepting X-Debug-* headers", nil)
	}

	hub := realtime.NewHub(realtime.HubOptions{Logger: log})
	opts.Hub = hub

	if strings.TrimSpace(cfg.RedisURL) != "" {
		ropts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return err
		}
		rdb := redis.NewClient(ropts)
		defer rdb.Close()

		relay := realtime.NewRedisRelay(rdb, cfg.RedisNotificationsChannel, hub, log)
		if err := relay.Ping(ctx); err != nil {
			return err
		}
		go func() {
			if err := relay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("redis relay stopped", map[string]any{"error": err})
			}
		}()
		opts.Broadcaster = relay
	}

	bus := appointments.NewBus(log.With(map[string]any{"component": "bus"}), cfg.NotifierTimeout)
	opts.Bus = bus

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.NewRouter(opts),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.AppEnv})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(sctx); err != nil {
		log.Error("http shutdown failed", map[string]any{"error": err})
	}
	// Notificaciones en vuelo antes de cerrar los sockets.
	bus.Wait()
	hub.Close()

	if err := shutdownTracing(sctx); err != nil {
		log.Warn("tracing shutdown failed", map[string]any{"error": err})
	}
	return nil
}

// Package server wires configuration into the running HTTP service.
package server

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/louisbranch/dronline.health/internal/auth"
	"github.com/louisbranch/dronline.health/internal/auth/session"
	"github.com/louisbranch/dronline.health/internal/forum"
	"github.com/louisbranch/dronline.health/internal/platform/config"
	"github.com/louisbranch/dronline.health/internal/platform/otel"
	"github.com/louisbranch/dronline.health/internal/platform/timeouts"
	"github.com/louisbranch/dronline.health/internal/storage/sqlite"
	"github.com/louisbranch/dronline.health/internal/web"
)

const (
	serviceName = "dronline-web"

	// sessionPurgeInterval bounds how long revocable expired sessions
	// linger in storage.
	sessionPurgeInterval = time.Hour
)

// Config holds the server command configuration.
type Config struct {
	HTTPAddr string `env:"DRONLINE_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath   string `env:"DRONLINE_DB_PATH" envDefault:"dronline.db"`
	AppName  string `env:"DRONLINE_APP_NAME" envDefault:"Dr. Online"`
}

// ParseConfig reads environment defaults then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "sqlite database path")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "display name used in page titles")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web server and blocks until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	shutdownOtel, err := otel.Setup(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("init otel: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.OtelShutdown)
		defer cancel()
		if err := shutdownOtel(shutdownCtx); err != nil {
			log.Printf("shutdown otel: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	signer, err := session.LoadSignerFromEnv(nil)
	if err != nil {
		return fmt.Errorf("load session signer: %w", err)
	}

	authService, err := auth.NewService(store, signer, nil, nil)
	if err != nil {
		return fmt.Errorf("init auth service: %w", err)
	}
	forumService, err := forum.NewService(store, nil, nil)
	if err != nil {
		return fmt.Errorf("init forum service: %w", err)
	}

	handler, err := web.NewHandler(web.Config{AppName: cfg.AppName}, authService, forumService, store)
	if err != nil {
		return fmt.Errorf("init web handler: %w", err)
	}

	go purgeSessions(ctx, authService)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// purgeSessions periodically removes expired web sessions from storage.
func purgeSessions(ctx context.Context, authService *auth.Service) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := authService.PurgeExpiredSessions(ctx); err != nil {
				log.Printf("purge expired sessions: %v", err)
			}
		}
	}
}

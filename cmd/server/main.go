// Command server runs the RiderApp admin console API.
//
// @title        RiderApp Admin Console API
// @version      1.0
// @description  Administrative console backend: session auth, user directory, system settings, and activity log.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/riderapp/admin-console/docs"
	"github.com/riderapp/admin-console/internal/api"
	"github.com/riderapp/admin-console/internal/core/domain"
	"github.com/riderapp/admin-console/internal/core/ports"
	"github.com/riderapp/admin-console/internal/core/service"
	"github.com/riderapp/admin-console/internal/infrastructure/config"
	mongodb "github.com/riderapp/admin-console/internal/infrastructure/db/mongo"
	redisdb "github.com/riderapp/admin-console/internal/infrastructure/db/redis"
	"github.com/riderapp/admin-console/internal/infrastructure/memstore"
	"github.com/riderapp/admin-console/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()
	deps := buildDependencies(ctx, cfg, log)

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.StoreBackend).Msg("admin console listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
	}
}

// buildDependencies wires repositories and services for the configured
// backend. The in-memory profile seeds the demo credential table, directory,
// and audit trail; the mongo profile persists everything and keeps passwords
// hashed.
func buildDependencies(ctx context.Context, cfg *config.Config, log zerolog.Logger) api.Dependencies {
	deps := api.Dependencies{
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	}

	var (
		credentials ports.CredentialStore
		accounts    ports.DirectoryRepository
		settings    ports.SettingsRepository
		activity    ports.ActivityRepository
	)

	switch cfg.StoreBackend {
	case config.BackendMongo:
		_, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongo")
		}

		credentialStore := mongodb.NewCredentialStore(db)
		directoryRepo := mongodb.NewDirectoryRepository(db)
		if err := credentialStore.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to ensure credential indexes")
		}
		if err := directoryRepo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to ensure directory indexes")
		}

		credentials = credentialStore
		accounts = directoryRepo
		settings = mongodb.NewSettingsRepository(db)
		activity = mongodb.NewActivityRepository(db)
		deps.Mongo = db

	default:
		credentials = memstore.NewCredentialStore(memstore.SeedCredentials())
		accounts = memstore.NewDirectoryRepository(memstore.SeedAccounts())
		settings = memstore.NewSettingsRepository(domain.DefaultSettings())
		activity = memstore.NewActivityRepository(memstore.SeedActivity())
	}

	var revoker ports.TokenRevoker
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		revoker = redisdb.NewTokenRevoker(client)
		deps.Redis = client
	} else {
		revoker = memstore.NewTokenRevoker()
	}

	deps.Revoker = revoker
	deps.Sessions = service.NewSessionService(credentials, revoker, cfg.JWTSecret, cfg.TokenTTL, log)
	deps.Directory = service.NewDirectoryService(accounts, settings, activity, log)

	return deps
}

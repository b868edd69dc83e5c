package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/offboardhq/offboard-api/config"
	"github.com/offboardhq/offboard-api/internal/adapters/pgsession"
	redisadapter "github.com/offboardhq/offboard-api/internal/adapters/redis"
	"github.com/offboardhq/offboard-api/internal/bootstrap"
	"github.com/offboardhq/offboard-api/internal/core"
	"github.com/offboardhq/offboard-api/internal/data"
	httpx "github.com/offboardhq/offboard-api/internal/http"
	"github.com/offboardhq/offboard-api/internal/service"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.InfoContext(ctx, "starting offboard-api",
		"session_store", cfg.Sessions.Store,
		"dev", cfg.IsDev)

	db, err := bootstrap.ConnectDB(cfg.Postgres, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close database failed", "error", cerr)
		}
	}()

	if cfg.Postgres.RunMigrationsOnStart {
		if err = bootstrap.RunMigrations(ctx, db, logger); err != nil {
			return err
		}
	} else {
		logger.InfoContext(ctx, "skipping database migrations on startup", "reason", "disabled via config")
	}

	repo := data.NewOffboardingRepo(db)
	offboardings := service.NewOffboardingService(service.OffboardingServiceOptions{Repo: repo})

	g, gctx := errgroup.WithContext(ctx)

	var sessions core.SessionStore
	switch cfg.Sessions.Store {
	case config.SessionStoreRedis:
		redisClient, redisErr := bootstrap.ConnectRedis(cfg.Sessions.Redis, logger)
		if redisErr != nil {
			return redisErr
		}
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
		sessions = redisadapter.NewSessionStore(redisClient)
	default:
		store := pgsession.New(pgsession.Options{
			DB:            db,
			TableName:     cfg.Sessions.TableName,
			SchemaName:    cfg.Sessions.SchemaName,
			PruneInterval: cfg.Sessions.PruneInterval,
			Logger:        logger,
		})
		sessions = store
		g.Go(func() error {
			if perr := store.RunPruner(gctx); perr != nil && !errors.Is(perr, context.Canceled) {
				return perr
			}
			return nil
		})
	}

	router := httpx.NewRouter(httpx.RouterServices{
		Offboardings: offboardings,
		Sessions:     sessions,
		Logger:       logger,
	})

	addr := net.JoinHostPort(cfg.HTTP.Host, strconv.Itoa(cfg.HTTP.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g.Go(func() error {
		logger.InfoContext(gctx, "http server listening", "addr", addr)
		if serr := server.ListenAndServe(); serr != nil && !errors.Is(serr, http.ErrServerClosed) {
			return serr
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	logger.InfoContext(ctx, "offboard-api ready")

	<-gctx.Done()
	stop()

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.InfoContext(ctx, "offboard-api stopped")
	return nil
}

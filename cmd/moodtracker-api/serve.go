package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kamilaomar/moodtracker/backend/internal/analysis"
	"github.com/kamilaomar/moodtracker/backend/internal/config"
	"github.com/kamilaomar/moodtracker/backend/internal/handlers"
	"github.com/kamilaomar/moodtracker/backend/internal/logger"
	"github.com/kamilaomar/moodtracker/backend/internal/middleware"
	"github.com/kamilaomar/moodtracker/backend/internal/repository"
	"github.com/kamilaomar/moodtracker/backend/internal/service"
	"github.com/kamilaomar/moodtracker/backend/pkg/supabase"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

const shutdownTimeout = 10 * time.Second

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.Setup(cfg.Log.Level, cfg.Log.Format)
	log.Info("starting moodtracker API server",
		logger.String("env", cfg.Server.Env),
		logger.String("storage", cfg.Storage.Driver),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var supabaseClient *supabase.Client
	if cfg.Supabase.URL != "" {
		supabaseClient = supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	}

	taskRepo, closeRepo, err := openTaskRepository(ctx, cfg, supabaseClient)
	if err != nil {
		return err
	}
	defer closeRepo()

	if cfg.Cache.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		taskRepo = repository.NewCachedTaskRepository(taskRepo, rdb, cfg.Cache.TTL)
		log.Info("task cache enabled", logger.String("addr", cfg.Cache.Addr))
	}

	taskService := service.NewTaskService(taskRepo)
	analysisService := service.NewAnalysisService(taskRepo, analysis.NewEngine(nil))

	if err := handlers.RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	routerCfg := handlers.RouterConfig{
		Env:         cfg.Server.Env,
		Logger:      log,
		CORSOrigins: cfg.Server.CORSOrigins,
	}
	if cfg.RateLimit.Requests > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}
	if cfg.Auth.Enabled {
		routerCfg.Verifier = supabaseClient
	}

	router := handlers.NewRouter(routerCfg,
		handlers.NewTaskHandler(taskService),
		handlers.NewAnalysisHandler(analysisService),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", logger.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// openTaskRepository selects the task store for the configured driver. The
// returned func releases it.
func openTaskRepository(ctx context.Context, cfg *config.Config, client *supabase.Client) (repository.TaskRepository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverSupabase:
		return repository.NewSupabaseTaskRepository(client), func() {}, nil
	case config.DriverPostgres, config.DriverSQLite:
		dialect := repository.SQLite
		if cfg.Storage.Driver == config.DriverPostgres {
			dialect = repository.Postgres
		}
		db, err := repository.OpenSQL(ctx, dialect, cfg.Storage.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
		}
		return repository.NewSQLTaskRepository(db, dialect), func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

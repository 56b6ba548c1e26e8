package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Admuad/concero-quiz/internal/config"
	"github.com/Admuad/concero-quiz/internal/infra/local"
	"github.com/Admuad/concero-quiz/internal/infra/memory"
	pgstore "github.com/Admuad/concero-quiz/internal/infra/postgres"
	rediscache "github.com/Admuad/concero-quiz/internal/infra/redis"
	"github.com/Admuad/concero-quiz/internal/infra/remote"
	"github.com/Admuad/concero-quiz/internal/questionbank"
	"github.com/Admuad/concero-quiz/internal/quiz"
	transport "github.com/Admuad/concero-quiz/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var loader memory.BankLoader = memory.NewStaticBankLoader(questionbank.All())
	if pool != nil {
		loader = pgstore.NewBankLoader(pool)
	}

	bankTTL := config.TTLDuration(cfg.Quiz.BankTTL, 10*time.Minute)
	var banks quiz.BankRepository
	if redisClient != nil {
		banks = rediscache.NewBankRepository(redisClient, loader, bankTTL)
	} else {
		banks = memory.NewBankRepository(loader, bankTTL)
	}

	var store transport.ResultStore
	if pool != nil {
		store = pgstore.NewResultStore(pool)
	} else {
		store = memory.NewResultStore()
	}
	if redisClient != nil {
		store = rediscache.NewParticipationCache(redisClient, store, redisTTL)
	}

	window, err := cfg.TournamentWindow()
	if err != nil {
		return err
	}

	var sink quiz.ResultSink = local.NewSink(store, window)
	if cfg.Sink.BaseURL != "" {
		sink = remote.NewSink(remote.Options{
			BaseURL: cfg.Sink.BaseURL,
			Retries: cfg.Sink.Retries,
			Backoff: config.TTLDuration(cfg.Sink.Backoff, time.Second),
		}, logger)
	}

	engine := quiz.NewEngine(banks, sink, quiz.Config{
		Questions:        cfg.Quiz.Questions,
		QuestionTime:     cfg.Quiz.QuestionTime,
		AutoAdvanceDelay: config.TTLDuration(cfg.Quiz.AutoAdvanceDelay, time.Second),
	}, logger)

	auth := transport.NewAuthenticator(cfg.Auth.JWTSecret)
	handler := transport.NewHandler(store, engine, window, auth, logger)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      handler.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("starting quiz service", "port", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Info("shutting down server")
	case <-ctx.Done():
		logger.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

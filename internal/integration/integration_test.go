package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"github.com/Admuad/concero-quiz/internal/domain"
	"github.com/Admuad/concero-quiz/internal/infra/local"
	pgstore "github.com/Admuad/concero-quiz/internal/infra/postgres"
	pgmigrations "github.com/Admuad/concero-quiz/internal/infra/postgres/migrations"
	rediscache "github.com/Admuad/concero-quiz/internal/infra/redis"
	"github.com/Admuad/concero-quiz/internal/questionbank"
	"github.com/Admuad/concero-quiz/internal/quiz"
)

func TestTournamentEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedBanks(t, ctx, pgURL)

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}

	banks := rediscache.NewBankRepository(redisClient, pgstore.NewBankLoader(pool), 5*time.Minute)
	store := rediscache.NewParticipationCache(redisClient, pgstore.NewResultStore(pool), 5*time.Minute)
	sink := local.NewSink(store, domain.Window{})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Frozen timers: the play-through is driven entirely by explicit calls.
	cfg := quiz.Config{TickInterval: time.Hour, AutoAdvanceDelay: time.Hour}
	engine := quiz.NewEngine(banks, sink, cfg, logger)

	result := playThrough(t, ctx, engine, "alice")
	if result.Username != "alice" || !result.IsTournament {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.IQ < 55 || result.IQ > 145 {
		t.Fatalf("score %d outside the valid range", result.IQ)
	}

	played, err := store.HasPlayed(ctx, "alice")
	if err != nil {
		t.Fatalf("has played: %v", err)
	}
	if !played {
		t.Fatalf("expected alice to be marked as played")
	}

	// Second attempt must be rejected at session construction.
	if _, err := engine.StartSession(ctx, domain.User{Username: "alice"}, domain.ModeTournament); !errors.Is(err, domain.ErrAlreadyParticipated) {
		t.Fatalf("expected ErrAlreadyParticipated, got %v", err)
	}

	entries, err := store.Leaderboard(ctx, domain.TimeframeTournament)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 1 || entries[0].Username != "alice" || entries[0].IQ != result.IQ {
		t.Fatalf("expected alice with score %d on the board, got %+v", result.IQ, entries)
	}

	// The participation marker lives in redis so repeat checks skip postgres.
	exists, err := redisClient.Exists(ctx, "tournament:played:alice").Result()
	if err != nil {
		t.Fatalf("redis exists: %v", err)
	}
	if exists != 1 {
		t.Fatalf("expected participation marker in redis")
	}
}

func playThrough(t *testing.T, ctx context.Context, engine *quiz.Engine, username string) domain.QuizResult {
	t.Helper()
	session, err := engine.StartSession(ctx, domain.User{Username: username}, domain.ModeTournament)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	defer session.Close()

	total := session.Current().Total
	for i := 0; i < total; i++ {
		if _, err := session.Submit(0); err != nil {
			t.Fatalf("question %d: submit: %v", i, err)
		}
		if i < total-1 {
			if err := session.Advance(); err != nil {
				t.Fatalf("question %d: advance: %v", i, err)
			}
		}
	}

	result, err := session.Finish(ctx)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	return result
}

func seedBanks(t *testing.T, ctx context.Context, dsn string) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for mode, bank := range questionbank.All() {
		data, err := json.Marshal(bank)
		if err != nil {
			t.Fatalf("marshal bank %s: %v", mode, err)
		}
		_, err = db.ExecContext(ctx,
			`INSERT INTO question_banks (mode, data) VALUES (?, ?::jsonb) ON CONFLICT (mode) DO UPDATE SET data=EXCLUDED.data`,
			string(mode), string(data),
		)
		if err != nil {
			t.Fatalf("insert bank %s: %v", mode, err)
		}
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "quiz", "POSTGRES_PASSWORD": "quizpass", "POSTGRES_DB": "quizdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://quiz:quizpass@%s:%s/quizdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}

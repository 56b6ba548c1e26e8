package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/Admuad/concero-quiz/internal/config"
	"github.com/Admuad/concero-quiz/internal/questionbank"
)

// NewSeedCmd loads the built-in question banks into postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in question banks into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}
	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	return seedBanks(ctx, db)
}

func seedBanks(ctx context.Context, db *bun.DB) error {
	for mode, bank := range questionbank.All() {
		data, err := json.Marshal(bank)
		if err != nil {
			return fmt.Errorf("marshal bank %s: %w", mode, err)
		}
		_, err = db.ExecContext(ctx,
			`INSERT INTO question_banks (mode, data, updated_at) VALUES (?, ?, now())
			 ON CONFLICT (mode) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
			string(mode), string(data),
		)
		if err != nil {
			return fmt.Errorf("seed bank %s: %w", mode, err)
		}
		slog.Info("seeded question bank", "mode", mode, "questions", len(bank.Questions))
	}
	return nil
}

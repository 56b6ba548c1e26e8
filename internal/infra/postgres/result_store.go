package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/Admuad/concero-quiz/internal/domain"
)

// leaderboardLimit caps how many rows any timeframe query returns.
const leaderboardLimit = 100

// ResultStore persists quiz and tournament results. The tournament table's
// username uniqueness is what actually enforces the single-attempt rule;
// everything above it is a cache.
type ResultStore struct {
	pool *pgxpool.Pool
}

func NewResultStore(pool *pgxpool.Pool) *ResultStore {
	return &ResultStore{pool: pool}
}

func (s *ResultStore) SaveResult(ctx context.Context, sub domain.ResultSubmission) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO results (username, iq, correct, total_questions) VALUES ($1, $2, $3, $4)`,
		sub.Username, sub.IQ, sub.Correct, sub.TotalQuestions)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (s *ResultStore) SaveTournamentResult(ctx context.Context, sub domain.TournamentSubmission) error {
	tag, err := s.pool.Exec(ctx,
		`INSERT INTO tournament_results (username, score, correct, total_questions, time_spent_ms)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (username) DO NOTHING`,
		sub.Username, sub.Score, sub.Correct, sub.TotalQuestions, sub.TimeSpentMS)
	if err != nil {
		return fmt.Errorf("save tournament result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAlreadyParticipated
	}
	return nil
}

func (s *ResultStore) HasPlayed(ctx context.Context, username string) (bool, error) {
	var played bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tournament_results WHERE username=$1)`, username).Scan(&played)
	if err != nil {
		return false, fmt.Errorf("participation check: %w", err)
	}
	return played, nil
}

func (s *ResultStore) Leaderboard(ctx context.Context, tf domain.Timeframe) ([]domain.LeaderboardEntry, error) {
	if tf == domain.TimeframeTournament {
		return s.tournamentBoard(ctx)
	}

	var cutoff *time.Time
	switch tf {
	case domain.TimeframeDaily:
		t := time.Now().Add(-24 * time.Hour)
		cutoff = &t
	case domain.TimeframeWeekly:
		t := time.Now().Add(-7 * 24 * time.Hour)
		cutoff = &t
	case domain.TimeframeMonthly:
		t := time.Now().Add(-30 * 24 * time.Hour)
		cutoff = &t
	}

	rows, err := s.pool.Query(ctx, `
		SELECT username, iq, correct, total_questions, created_at FROM (
			SELECT DISTINCT ON (username) username, iq, correct, total_questions, created_at
			FROM results
			WHERE $1::timestamptz IS NULL OR created_at >= $1
			ORDER BY username, iq DESC, created_at DESC
		) best
		ORDER BY iq DESC, created_at ASC
		LIMIT $2`, cutoff, leaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (s *ResultStore) tournamentBoard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT username, score, correct, total_questions, created_at
		FROM tournament_results
		ORDER BY score DESC, time_spent_ms ASC
		LIMIT $1`, leaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("tournament leaderboard: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanEntries(rows rowScanner) ([]domain.LeaderboardEntry, error) {
	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.IQ, &e.Correct, &e.TotalQuestions, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

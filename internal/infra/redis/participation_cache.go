package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Admuad/concero-quiz/internal/domain"
)

// ResultStore is the persistence layer this cache fronts.
type ResultStore interface {
	SaveResult(ctx context.Context, sub domain.ResultSubmission) error
	SaveTournamentResult(ctx context.Context, sub domain.TournamentSubmission) error
	HasPlayed(ctx context.Context, username string) (bool, error)
	Leaderboard(ctx context.Context, tf domain.Timeframe) ([]domain.LeaderboardEntry, error)
}

// ParticipationCache keeps tournament participation markers in Redis in
// front of the backing store, so the hot has-played check usually avoids a
// database round trip. The store stays authoritative: markers are
// best-effort and only ever added after a successful save.
type ParticipationCache struct {
	client *redis.Client
	inner  ResultStore
	ttl    time.Duration
}

func NewParticipationCache(client *redis.Client, inner ResultStore, ttl time.Duration) *ParticipationCache {
	return &ParticipationCache{client: client, inner: inner, ttl: ttl}
}

func (c *ParticipationCache) SaveResult(ctx context.Context, sub domain.ResultSubmission) error {
	return c.inner.SaveResult(ctx, sub)
}

func (c *ParticipationCache) SaveTournamentResult(ctx context.Context, sub domain.TournamentSubmission) error {
	if err := c.inner.SaveTournamentResult(ctx, sub); err != nil {
		return err
	}
	_ = c.client.SetNX(ctx, c.key(sub.Username), "1", c.ttl).Err()
	return nil
}

func (c *ParticipationCache) HasPlayed(ctx context.Context, username string) (bool, error) {
	if n, err := c.client.Exists(ctx, c.key(username)).Result(); err == nil && n > 0 {
		return true, nil
	}
	played, err := c.inner.HasPlayed(ctx, username)
	if err != nil {
		return false, err
	}
	if played {
		_ = c.client.SetNX(ctx, c.key(username), "1", c.ttl).Err()
	}
	return played, nil
}

func (c *ParticipationCache) Leaderboard(ctx context.Context, tf domain.Timeframe) ([]domain.LeaderboardEntry, error) {
	return c.inner.Leaderboard(ctx, tf)
}

func (c *ParticipationCache) key(username string) string {
	return "tournament:played:" + username
}

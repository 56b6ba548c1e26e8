package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Admuad/concero-quiz/internal/domain"
)

// ResultStore keeps submitted results in memory. Used when no Postgres is
// configured; the leaderboard keeps each player's best IQ like the
// production aggregation does.
type ResultStore struct {
	clock func() time.Time

	mu          sync.RWMutex
	results     []storedResult
	tournaments map[string]storedTournament
}

type storedResult struct {
	domain.ResultSubmission
	createdAt time.Time
}

type storedTournament struct {
	domain.TournamentSubmission
	createdAt time.Time
}

func NewResultStore() *ResultStore {
	return &ResultStore{
		clock:       time.Now,
		tournaments: make(map[string]storedTournament),
	}
}

// NewResultStoreWithClock is test-only for deterministic timestamps.
func NewResultStoreWithClock(now func() time.Time) *ResultStore {
	s := NewResultStore()
	s.clock = now
	return s
}

func (s *ResultStore) SaveResult(_ context.Context, sub domain.ResultSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, storedResult{ResultSubmission: sub, createdAt: s.clock()})
	return nil
}

// SaveTournamentResult enforces the single-attempt rule: a second submission
// for the same username fails with ErrAlreadyParticipated.
func (s *ResultStore) SaveTournamentResult(_ context.Context, sub domain.TournamentSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tournaments[sub.Username]; ok {
		return domain.ErrAlreadyParticipated
	}
	s.tournaments[sub.Username] = storedTournament{TournamentSubmission: sub, createdAt: s.clock()}
	return nil
}

func (s *ResultStore) HasPlayed(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tournaments[username]
	return ok, nil
}

func (s *ResultStore) Leaderboard(_ context.Context, tf domain.Timeframe) ([]domain.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if tf == domain.TimeframeTournament {
		return s.tournamentBoardLocked(), nil
	}

	cutoff := timeframeCutoff(tf, s.clock())
	best := make(map[string]domain.LeaderboardEntry)
	for _, r := range s.results {
		if !cutoff.IsZero() && r.createdAt.Before(cutoff) {
			continue
		}
		entry, ok := best[r.Username]
		if !ok || r.IQ > entry.IQ {
			best[r.Username] = domain.LeaderboardEntry{
				Username:       r.Username,
				IQ:             r.IQ,
				Correct:        r.Correct,
				TotalQuestions: r.TotalQuestions,
				CreatedAt:      r.createdAt,
			}
		}
	}

	entries := make([]domain.LeaderboardEntry, 0, len(best))
	for _, e := range best {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IQ != entries[j].IQ {
			return entries[i].IQ > entries[j].IQ
		}
		// Tie-break by who got there first, then by name.
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.Before(entries[j].CreatedAt)
		}
		return entries[i].Username < entries[j].Username
	})
	return entries, nil
}

func (s *ResultStore) tournamentBoardLocked() []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, 0, len(s.tournaments))
	spent := make(map[string]int64, len(s.tournaments))
	for _, t := range s.tournaments {
		entries = append(entries, domain.LeaderboardEntry{
			Username:       t.Username,
			IQ:             t.Score,
			Correct:        t.Correct,
			TotalQuestions: t.TotalQuestions,
			CreatedAt:      t.createdAt,
		})
		spent[t.Username] = t.TimeSpentMS
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IQ != entries[j].IQ {
			return entries[i].IQ > entries[j].IQ
		}
		// Equal scores rank the faster finisher higher.
		return spent[entries[i].Username] < spent[entries[j].Username]
	})
	return entries
}

func timeframeCutoff(tf domain.Timeframe, now time.Time) time.Time {
	switch tf {
	case domain.TimeframeDaily:
		return now.Add(-24 * time.Hour)
	case domain.TimeframeWeekly:
		return now.Add(-7 * 24 * time.Hour)
	case domain.TimeframeMonthly:
		return now.Add(-30 * 24 * time.Hour)
	default:
		return time.Time{}
	}
}

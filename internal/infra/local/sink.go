// Package local adapts an in-process result store to the engine's result
// sink, for deployments that persist results themselves instead of
// forwarding them to a separate results API.
package local

import (
	"context"
	"time"

	"github.com/Admuad/concero-quiz/internal/domain"
)

// Store is the subset of the result store the sink needs.
type Store interface {
	SaveResult(ctx context.Context, sub domain.ResultSubmission) error
	SaveTournamentResult(ctx context.Context, sub domain.TournamentSubmission) error
	HasPlayed(ctx context.Context, username string) (bool, error)
}

// Sink answers tournament status from the configured window and writes
// results straight to the store.
type Sink struct {
	store  Store
	window domain.Window
	now    func() time.Time
}

func NewSink(store Store, window domain.Window) *Sink {
	return &Sink{store: store, window: window, now: time.Now}
}

func (s *Sink) SubmitResult(ctx context.Context, sub domain.ResultSubmission) error {
	return s.store.SaveResult(ctx, sub)
}

func (s *Sink) SubmitTournamentResult(ctx context.Context, sub domain.TournamentSubmission) error {
	if s.window.Status(s.now()).Status != domain.TournamentActive {
		return domain.ErrTournamentNotActive
	}
	return s.store.SaveTournamentResult(ctx, sub)
}

func (s *Sink) TournamentStatus(_ context.Context) (domain.TournamentStatus, error) {
	return s.window.Status(s.now()), nil
}

func (s *Sink) HasPlayed(ctx context.Context, username string) (bool, error) {
	return s.store.HasPlayed(ctx, username)
}

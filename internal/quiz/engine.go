// Package quiz contains the session engine: question selection, the
// per-question countdown, speed-weighted scoring, tournament eligibility
// gating and result submission.
package quiz

import (
	"context"
	crand "crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Admuad/concero-quiz/internal/domain"
	"github.com/Admuad/concero-quiz/internal/shuffle"
)

// Config holds the per-session constants. Zero fields fall back to the
// defaults shared by all modes.
type Config struct {
	Questions        int           // questions per session
	QuestionTime     int           // countdown units per question
	TickInterval     time.Duration // wall-clock length of one countdown unit
	AutoAdvanceDelay time.Duration // pause after an answer before the next question
}

func (c Config) withDefaults() Config {
	if c.Questions <= 0 {
		c.Questions = 15
	}
	if c.QuestionTime <= 0 {
		c.QuestionTime = 15
	}
	if c.TickInterval <= 0 {
		c.TickInterval = time.Second
	}
	if c.AutoAdvanceDelay <= 0 {
		c.AutoAdvanceDelay = time.Second
	}
	return c
}

// BankRepository loads question banks (from cache/backing store).
type BankRepository interface {
	GetBank(ctx context.Context, mode domain.Mode) (domain.Bank, error)
}

// ResultSink is the persistence collaborator sessions report to. Backed by
// the remote REST client or by an in-process store adapter.
type ResultSink interface {
	SubmitResult(ctx context.Context, sub domain.ResultSubmission) error
	SubmitTournamentResult(ctx context.Context, sub domain.TournamentSubmission) error
	TournamentStatus(ctx context.Context) (domain.TournamentStatus, error)
	HasPlayed(ctx context.Context, username string) (bool, error)
}

// Engine builds quiz sessions. One Engine serves all modes; each session it
// hands out is exclusively owned by the caller.
type Engine struct {
	banks  BankRepository
	sink   ResultSink
	cfg    Config
	sched  Scheduler
	logger *slog.Logger
	src    io.Reader
	now    func() time.Time
}

func NewEngine(banks BankRepository, sink ResultSink, cfg Config, logger *slog.Logger) *Engine {
	return NewEngineWithScheduler(banks, sink, cfg, logger, TimerScheduler{}, crand.Reader)
}

// NewEngineWithScheduler allows deterministic timers and shuffles in tests.
func NewEngineWithScheduler(banks BankRepository, sink ResultSink, cfg Config, logger *slog.Logger, sched Scheduler, src io.Reader) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		banks:  banks,
		sink:   sink,
		cfg:    cfg.withDefaults(),
		sched:  sched,
		logger: logger,
		src:    src,
		now:    time.Now,
	}
}

// StartSession selects and shuffles a question set for the mode and returns a
// running session. Tournament sessions are gated on the eligibility check:
// construction fails with ErrTournamentNotActive or ErrAlreadyParticipated
// and no session is created.
func (e *Engine) StartSession(ctx context.Context, user domain.User, mode domain.Mode) (*Session, error) {
	if user.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("unknown quiz mode %q", mode)
	}

	if mode == domain.ModeTournament {
		elig, err := e.Eligibility(ctx, user)
		if err != nil {
			return nil, err
		}
		if elig.Status != domain.TournamentActive {
			return nil, domain.ErrTournamentNotActive
		}
		if elig.HasPlayed {
			return nil, domain.ErrAlreadyParticipated
		}
	}

	questions, err := e.pickQuestions(ctx, mode)
	if err != nil {
		return nil, err
	}

	now := e.now()
	s := &Session{
		id:        uuid.NewString(),
		user:      user,
		mode:      mode,
		cfg:       e.cfg,
		sink:      e.sink,
		sched:     e.sched,
		logger:    e.logger,
		now:       e.now,
		startedAt: now,
		questions: questions,
		events:    make(chan Event, 16),
	}
	s.clock = NewClock(e.cfg.QuestionTime, s.timeoutLocked)
	s.begin()

	e.logger.Info("session started", "session", s.id, "user", user.Username, "mode", mode)
	return s, nil
}

// Eligibility fetches the tournament window state and whether the user has
// already played. It never mutates anything.
func (e *Engine) Eligibility(ctx context.Context, user domain.User) (domain.Eligibility, error) {
	status, err := e.sink.TournamentStatus(ctx)
	if err != nil {
		return domain.Eligibility{}, fmt.Errorf("tournament status: %w", err)
	}
	played, err := e.sink.HasPlayed(ctx, user.Username)
	if err != nil {
		return domain.Eligibility{}, fmt.Errorf("tournament participation check: %w", err)
	}
	return domain.Eligibility{Status: status.Status, HasPlayed: played}, nil
}

func (e *Engine) pickQuestions(ctx context.Context, mode domain.Mode) ([]domain.SessionQuestion, error) {
	bank, err := e.banks.GetBank(ctx, mode)
	if err != nil {
		return nil, err
	}
	if len(bank.Questions) < e.cfg.Questions {
		return nil, fmt.Errorf("%w: mode %s has %d questions, need %d",
			domain.ErrBankTooSmall, mode, len(bank.Questions), e.cfg.Questions)
	}

	picked := shuffle.WithSource(e.src, bank.Questions)[:e.cfg.Questions]
	questions := make([]domain.SessionQuestion, 0, len(picked))
	for _, q := range picked {
		shuffled := shuffle.WithSource(e.src, q.Options[:])
		var opts [domain.OptionCount]string
		copy(opts[:], shuffled)
		questions = append(questions, domain.SessionQuestion{
			Text:    q.Text,
			Options: opts,
			Answer:  q.Answer,
		})
	}
	return questions, nil
}

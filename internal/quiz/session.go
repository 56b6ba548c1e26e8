package quiz

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Admuad/concero-quiz/internal/domain"
)

type sessionState int

const (
	stateUnanswered sessionState = iota
	stateAnswered
	stateTimedOut
	stateFinished
)

// QuestionView is what a transport shows for the active question. It never
// carries the correct answer.
type QuestionView struct {
	Index         int                        `json:"index"`
	Total         int                        `json:"total"`
	Text          string                     `json:"text"`
	Options       [domain.OptionCount]string `json:"options"`
	TimeRemaining int                        `json:"timeRemaining"`
}

// SubmitOutcome reports what a Submit call did. Applied is false when the
// question was already answered or timed out and the call was a no-op.
type SubmitOutcome struct {
	Applied       bool `json:"applied"`
	Correct       bool `json:"correct"`
	CorrectOption int  `json:"correctOption"`
	TimeRemaining int  `json:"timeRemaining"`
}

// EventType tags session events pushed to the owning transport.
type EventType string

const (
	EventQuestion EventType = "question"
	EventAnswered EventType = "answerResult"
	EventTimeout  EventType = "timeout"
	EventTick     EventType = "tick"
)

// Event is a state-change notification for the single session owner.
type Event struct {
	Type          EventType      `json:"type"`
	Question      *QuestionView  `json:"question,omitempty"`
	Outcome       *SubmitOutcome `json:"outcome,omitempty"`
	TimeRemaining int            `json:"timeRemaining"`
}

// Session is one play-through of a quiz. It owns its question set, countdown
// and timers exclusively; all transitions are serialized behind a mutex so a
// late timer tick can never race a just-recorded answer.
type Session struct {
	id        string
	user      domain.User
	mode      domain.Mode
	cfg       Config
	sink      ResultSink
	sched     Scheduler
	logger    *slog.Logger
	now       func() time.Time
	startedAt time.Time

	mu            sync.Mutex
	questions     []domain.SessionQuestion
	index         int
	state         sessionState
	answers       []domain.Answer
	correct       int
	points        float64
	clock         *Clock
	cancelTick    CancelFunc
	cancelAdvance CancelFunc
	closed        bool
	events        chan Event
}

func (s *Session) ID() string        { return s.id }
func (s *Session) User() domain.User { return s.user }
func (s *Session) Mode() domain.Mode { return s.mode }

// Events returns the session's notification stream. The channel is closed by
// Close; it carries question, tick, answer and timeout events.
func (s *Session) Events() <-chan Event { return s.events }

// CorrectCount reports how many questions were answered correctly so far.
func (s *Session) CorrectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.correct
}

// Answers returns the recorded answer for each completed question, in order:
// a selected option index or a timeout marker.
func (s *Session) Answers() []domain.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

// WeightedPoints reports the speed-weighted score accumulated so far.
func (s *Session) WeightedPoints() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.points
}

// Current returns the view of the active question.
func (s *Session) Current() QuestionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *Session) currentLocked() QuestionView {
	q := s.questions[s.index]
	return QuestionView{
		Index:         s.index,
		Total:         len(s.questions),
		Text:          q.Text,
		Options:       q.Options,
		TimeRemaining: s.clock.Remaining(),
	}
}

// begin emits the first question and starts the countdown ticker. Called by
// the engine exactly once, before the session is handed to its owner.
func (s *Session) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	view := s.currentLocked()
	s.emitLocked(Event{Type: EventQuestion, Question: &view, TimeRemaining: s.clock.Remaining()})
	s.cancelTick = s.sched.ScheduleTick(s.cfg.TickInterval, s.tick)
}

func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.state != stateUnanswered {
		return
	}
	s.clock.Tick() // may invoke timeoutLocked via OnExpire
	if s.state == stateUnanswered {
		s.emitLocked(Event{Type: EventTick, TimeRemaining: s.clock.Remaining()})
	}
}

// Submit records the answer for the active question. A repeat call on an
// already answered or timed-out question is a no-op, not an error.
func (s *Session) Submit(option int) (SubmitOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.state == stateFinished {
		return SubmitOutcome{}, domain.ErrAlreadyFinished
	}
	if option < 0 || option >= domain.OptionCount {
		return SubmitOutcome{}, domain.ErrOptionOutOfRange
	}

	q := s.questions[s.index]
	if s.state != stateUnanswered {
		return SubmitOutcome{Applied: false, CorrectOption: correctIndex(q), TimeRemaining: s.clock.Remaining()}, nil
	}

	s.clock.Freeze()
	s.answers = append(s.answers, domain.Selected(option))
	s.state = stateAnswered

	remaining := s.clock.Remaining()
	correct := q.Options[option] == q.Answer
	if correct {
		s.correct++
		s.points += 1 + float64(remaining)/float64(s.cfg.QuestionTime)
	}
	s.scheduleAdvanceLocked()

	outcome := SubmitOutcome{
		Applied:       true,
		Correct:       correct,
		CorrectOption: correctIndex(q),
		TimeRemaining: remaining,
	}
	out := outcome
	s.emitLocked(Event{Type: EventAnswered, Outcome: &out, TimeRemaining: remaining})
	return outcome, nil
}

// timeoutLocked is the countdown expiry transition. A no-op unless the
// question is still unanswered, so an answer that landed just before the
// final tick always wins.
func (s *Session) timeoutLocked() {
	if s.state != stateUnanswered {
		return
	}
	s.clock.Freeze()
	s.answers = append(s.answers, domain.TimedOutAnswer())
	s.state = stateTimedOut
	s.scheduleAdvanceLocked()

	out := SubmitOutcome{CorrectOption: correctIndex(s.questions[s.index])}
	s.emitLocked(Event{Type: EventTimeout, Outcome: &out})
}

func (s *Session) scheduleAdvanceLocked() {
	// The last question has no automatic advance; finishing is explicit.
	if s.index+1 >= len(s.questions) {
		return
	}
	if s.cancelAdvance != nil {
		s.cancelAdvance()
	}
	s.cancelAdvance = s.sched.ScheduleDelayed(s.cfg.AutoAdvanceDelay, s.autoAdvance)
}

func (s *Session) autoAdvance() {
	if err := s.Advance(); err != nil && !errors.Is(err, domain.ErrAlreadyFinished) {
		s.logger.Warn("auto-advance skipped", "session", s.id, "error", err)
	}
}

// Advance moves to the next question. Valid only after the active question
// was answered or timed out, and only when a next question exists.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.state == stateFinished {
		return domain.ErrAlreadyFinished
	}
	if s.state == stateUnanswered || s.index+1 >= len(s.questions) {
		return domain.ErrInvalidTransition
	}

	if s.cancelAdvance != nil {
		s.cancelAdvance()
		s.cancelAdvance = nil
	}
	s.index++
	s.state = stateUnanswered
	s.clock.Reset(s.cfg.QuestionTime)

	view := s.currentLocked()
	s.emitLocked(Event{Type: EventQuestion, Question: &view, TimeRemaining: s.clock.Remaining()})
	return nil
}

// Finish computes the result and reports it to the sink. Valid only once the
// last question was answered or timed out. A second call returns
// ErrAlreadyFinished without re-submitting.
func (s *Session) Finish(ctx context.Context) (domain.QuizResult, error) {
	s.mu.Lock()
	if s.state == stateFinished {
		s.mu.Unlock()
		return domain.QuizResult{}, domain.ErrAlreadyFinished
	}
	if s.index != len(s.questions)-1 || s.state == stateUnanswered {
		s.mu.Unlock()
		return domain.QuizResult{}, domain.ErrInvalidTransition
	}

	s.state = stateFinished
	s.stopTimersLocked()
	total := len(s.questions)
	result := domain.QuizResult{
		Username:       s.user.Username,
		Correct:        s.correct,
		TotalQuestions: total,
		WeightedPoints: s.points,
		IQ:             DerivedScore(s.points, total),
		IsTournament:   s.mode == domain.ModeTournament,
		TimeSpent:      s.now().Sub(s.startedAt),
	}
	result.Rating = Rating(result.IQ)
	s.mu.Unlock()

	// Report outside the lock; the finished state above guarantees a single
	// submission even if Finish is raced.
	if err := s.report(ctx, result); err != nil {
		if errors.Is(err, domain.ErrAlreadyParticipated) {
			return domain.QuizResult{}, err
		}
		// Best-effort persistence: the player still gets their score.
		s.logger.Error("result submission failed", "session", s.id, "user", s.user.Username, "error", err)
	}
	return result, nil
}

func (s *Session) report(ctx context.Context, result domain.QuizResult) error {
	if result.IsTournament {
		return s.sink.SubmitTournamentResult(ctx, domain.TournamentSubmission{
			Username:       result.Username,
			Score:          result.IQ,
			Correct:        result.Correct,
			TotalQuestions: result.TotalQuestions,
			TimeSpentMS:    result.TimeSpent.Milliseconds(),
		})
	}
	return s.sink.SubmitResult(ctx, domain.ResultSubmission{
		Username:       result.Username,
		IQ:             result.IQ,
		Correct:        result.Correct,
		TotalQuestions: result.TotalQuestions,
	})
}

// Close cancels the countdown ticker and any pending auto-advance so an
// abandoned session cannot leak timer effects into a later one. Idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.state = stateFinished
	s.stopTimersLocked()
	close(s.events)
}

func (s *Session) stopTimersLocked() {
	if s.cancelTick != nil {
		s.cancelTick()
		s.cancelTick = nil
	}
	if s.cancelAdvance != nil {
		s.cancelAdvance()
		s.cancelAdvance = nil
	}
}

func (s *Session) emitLocked(ev Event) {
	if s.closed {
		return
	}
	select {
	case s.events <- ev:
	default:
		// Drop the oldest update rather than block a timer callback on a
		// slow consumer.
		select {
		case <-s.events:
		default:
		}
		s.events <- ev
	}
}

func correctIndex(q domain.SessionQuestion) int {
	for i, opt := range q.Options {
		if opt == q.Answer {
			return i
		}
	}
	return -1
}

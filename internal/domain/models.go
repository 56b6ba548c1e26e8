package domain

import "time"

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Mode selects which question bank a session draws from.
type Mode string

const (
	ModePractice   Mode = "practice"
	ModeStandard   Mode = "standard"
	ModeTournament Mode = "tournament"
)

// Valid reports whether the mode is one of the known quiz modes.
func (m Mode) Valid() bool {
	switch m {
	case ModePractice, ModeStandard, ModeTournament:
		return true
	}
	return false
}

// Question is an immutable MCQ record. Answer must equal exactly one of Options.
type Question struct {
	Text    string              `json:"text"`
	Options [OptionCount]string `json:"options"`
	Answer  string              `json:"answer"`
}

// SessionQuestion is a Question whose options were shuffled for one session
// instance. Derived once at session build time, immutable thereafter.
type SessionQuestion struct {
	Text    string
	Options [OptionCount]string
	Answer  string
}

// Bank is the question collection for one quiz mode.
type Bank struct {
	Mode      Mode       `json:"mode"`
	Questions []Question `json:"questions"`
}

// User identifies a player by display handle.
type User struct {
	Username string `json:"username"`
}

// Answer is the recorded outcome for a single question: either a selected
// option index or a timeout. Sessions track "no answer yet" as the absence
// of an Answer, not as a zero value.
type Answer struct {
	Option   int
	TimedOut bool
}

// Selected builds an answer for the option at index i.
func Selected(i int) Answer { return Answer{Option: i} }

// TimedOutAnswer marks a question that expired unanswered.
func TimedOutAnswer() Answer { return Answer{Option: -1, TimedOut: true} }

// QuizResult is the immutable snapshot produced when a session finishes.
type QuizResult struct {
	Username       string        `json:"username"`
	Correct        int           `json:"correct"`
	TotalQuestions int           `json:"totalQuestions"`
	WeightedPoints float64       `json:"totalPoints"`
	IQ             int           `json:"IQ"`
	Rating         string        `json:"rating"`
	IsTournament   bool          `json:"isTournament,omitempty"`
	TimeSpent      time.Duration `json:"-"`
}

// TournamentState is the lifecycle phase of the tournament window.
type TournamentState string

const (
	TournamentUpcoming TournamentState = "upcoming"
	TournamentActive   TournamentState = "active"
	TournamentEnded    TournamentState = "ended"
)

// TournamentStatus is the window snapshot served by /api/tournament-status.
type TournamentStatus struct {
	Status    TournamentState `json:"status"`
	StartTime *time.Time      `json:"startTime,omitempty"`
}

// Eligibility gates tournament session construction. It is a read-only
// snapshot; creating a session never mutates it.
type Eligibility struct {
	Status    TournamentState
	HasPlayed bool
}

// ResultSubmission is the wire payload for POST /api/submitResult.
type ResultSubmission struct {
	Username       string `json:"username"`
	IQ             int    `json:"IQ"`
	Correct        int    `json:"correct"`
	TotalQuestions int    `json:"totalQuestions"`
}

// TournamentSubmission is the wire payload for POST /api/submitTournamentResult.
type TournamentSubmission struct {
	Username       string `json:"username"`
	Score          int    `json:"score"`
	Correct        int    `json:"correct"`
	TotalQuestions int    `json:"totalQuestions"`
	TimeSpentMS    int64  `json:"timeSpent"`
}

// LeaderboardEntry is one row of the public leaderboard.
type LeaderboardEntry struct {
	Username       string    `json:"username"`
	IQ             int       `json:"IQ"`
	Correct        int       `json:"correct"`
	TotalQuestions int       `json:"totalQuestions"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Timeframe filters leaderboard queries.
type Timeframe string

const (
	TimeframeDaily      Timeframe = "daily"
	TimeframeWeekly     Timeframe = "weekly"
	TimeframeMonthly    Timeframe = "monthly"
	TimeframeAll        Timeframe = "all"
	TimeframeTournament Timeframe = "tournament"
)

// Valid reports whether the timeframe is a known filter.
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly, TimeframeAll, TimeframeTournament:
		return true
	}
	return false
}

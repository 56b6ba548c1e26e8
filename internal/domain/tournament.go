package domain

import "time"

// DefaultTournamentLength is used when a window has a start but no end.
const DefaultTournamentLength = 7 * 24 * time.Hour

// Window is the tournament time box. A zero Start means no window is
// configured and the tournament counts as always active.
type Window struct {
	Start time.Time
	End   time.Time
}

// Status derives the tournament phase at the given instant.
func (w Window) Status(now time.Time) TournamentStatus {
	if w.Start.IsZero() {
		return TournamentStatus{Status: TournamentActive}
	}
	start := w.Start
	end := w.End
	if end.IsZero() {
		end = start.Add(DefaultTournamentLength)
	}
	switch {
	case now.Before(start):
		return TournamentStatus{Status: TournamentUpcoming, StartTime: &start}
	case now.After(end):
		return TournamentStatus{Status: TournamentEnded, StartTime: &start}
	default:
		return TournamentStatus{Status: TournamentActive, StartTime: &start}
	}
}

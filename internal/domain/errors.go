package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when a session method is called
	// outside its valid state. The session guards instead of corrupting.
	ErrInvalidTransition = errors.New("invalid session transition")
	// ErrAlreadyFinished is returned by a second finish on the same session.
	ErrAlreadyFinished = errors.New("quiz session already finished")
	// ErrTournamentNotActive means the tournament window is not open.
	ErrTournamentNotActive = errors.New("tournament not active")
	// ErrAlreadyParticipated means the user already played the tournament.
	ErrAlreadyParticipated = errors.New("already participated in tournament")
	// ErrBankNotFound indicates the question bank for a mode could not be loaded.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrBankTooSmall indicates the bank has fewer questions than a session needs.
	ErrBankTooSmall = errors.New("question bank too small")
	// ErrOptionOutOfRange indicates a submitted option index is invalid.
	ErrOptionOutOfRange = errors.New("option index out of range")
)

// TransientError wraps the last cause once retries for a remote call are
// exhausted. Use errors.As to detect it.
type TransientError struct {
	Attempts int
	Cause    error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient failure after %d attempts: %v", e.Attempts, e.Cause)
}

func (e *TransientError) Unwrap() error { return e.Cause }

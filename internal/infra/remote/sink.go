// Package remote implements the Result Sink client over HTTP with a retry
// wrapper: network failures, 429 and 5xx responses are retried with doubling
// backoff; other statuses are surfaced to the caller untouched.
package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Admuad/concero-quiz/internal/domain"
)

const (
	defaultRetries = 3
	defaultBackoff = time.Second
)

// Options configures the sink client. Zero fields use the defaults above.
type Options struct {
	BaseURL string
	Retries int
	Backoff time.Duration
}

// Sink talks to the persistence backend's REST endpoints.
type Sink struct {
	client *resty.Client
	logger *slog.Logger
}

func NewSink(opts Options, logger *slog.Logger) *Sink {
	if opts.Retries <= 0 {
		opts.Retries = defaultRetries
	}
	if opts.Backoff <= 0 {
		opts.Backoff = defaultBackoff
	}
	if logger == nil {
		logger = slog.Default()
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetRetryCount(opts.Retries).
		// The wait bounds must bracket the doubling schedule below, or the
		// client clamps the computed waits to its own defaults.
		SetRetryWaitTime(opts.Backoff).
		SetRetryMaxWaitTime(opts.Backoff << uint(opts.Retries)).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
		}).
		SetRetryAfter(func(c *resty.Client, r *resty.Response) (time.Duration, error) {
			// backoff, 2*backoff, 4*backoff, ...
			return opts.Backoff << uint(r.Request.Attempt-1), nil
		})

	return &Sink{client: client, logger: logger}
}

func (s *Sink) SubmitResult(ctx context.Context, sub domain.ResultSubmission) error {
	resp, err := s.client.R().SetContext(ctx).SetBody(sub).Post("/api/submitResult")
	if err := s.checkResponse(resp, err); err != nil {
		return fmt.Errorf("submit result: %w", err)
	}
	return nil
}

func (s *Sink) SubmitTournamentResult(ctx context.Context, sub domain.TournamentSubmission) error {
	resp, err := s.client.R().SetContext(ctx).SetBody(sub).Post("/api/submitTournamentResult")
	if err == nil && resp.StatusCode() == http.StatusForbidden {
		return domain.ErrAlreadyParticipated
	}
	if err := s.checkResponse(resp, err); err != nil {
		return fmt.Errorf("submit tournament result: %w", err)
	}
	return nil
}

func (s *Sink) TournamentStatus(ctx context.Context) (domain.TournamentStatus, error) {
	var status domain.TournamentStatus
	resp, err := s.client.R().SetContext(ctx).SetResult(&status).Get("/api/tournament-status")
	if err := s.checkResponse(resp, err); err != nil {
		return domain.TournamentStatus{}, fmt.Errorf("tournament status: %w", err)
	}
	return status, nil
}

func (s *Sink) HasPlayed(ctx context.Context, username string) (bool, error) {
	var out struct {
		HasPlayed bool `json:"hasPlayed"`
	}
	resp, err := s.client.R().SetContext(ctx).
		SetBody(map[string]string{"username": username}).
		SetResult(&out).
		Post("/api/tournament-check")
	if err := s.checkResponse(resp, err); err != nil {
		return false, fmt.Errorf("tournament check: %w", err)
	}
	return out.HasPlayed, nil
}

// checkResponse classifies the final outcome after resty's retry loop.
// A retriable status or network failure that survived every attempt becomes
// a TransientError; context cancellation and other non-2xx statuses pass
// through for the caller to branch on.
func (s *Sink) checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		attempts := 1
		if resp != nil && resp.Request != nil && resp.Request.Attempt > 0 {
			attempts = resp.Request.Attempt
		}
		return &domain.TransientError{Attempts: attempts, Cause: err}
	}
	if resp.IsSuccess() {
		return nil
	}
	code := resp.StatusCode()
	if code == http.StatusTooManyRequests || code >= 500 {
		return &domain.TransientError{
			Attempts: resp.Request.Attempt,
			Cause:    fmt.Errorf("server returned %d", code),
		}
	}
	return fmt.Errorf("unexpected status %d", code)
}

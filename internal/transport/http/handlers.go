package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Admuad/concero-quiz/internal/domain"
	"github.com/Admuad/concero-quiz/internal/quiz"
)

// ResultStore is the persistence surface the REST handlers need. The memory,
// redis and postgres stores all satisfy it.
type ResultStore interface {
	SaveResult(ctx context.Context, sub domain.ResultSubmission) error
	SaveTournamentResult(ctx context.Context, sub domain.TournamentSubmission) error
	HasPlayed(ctx context.Context, username string) (bool, error)
	Leaderboard(ctx context.Context, tf domain.Timeframe) ([]domain.LeaderboardEntry, error)
}

// Handler bundles the HTTP surface: REST result endpoints plus the websocket
// play endpoint that drives the quiz engine server-side.
type Handler struct {
	store  ResultStore
	engine *quiz.Engine
	window domain.Window
	auth   *Authenticator
	logger *slog.Logger
	now    func() time.Time
}

func NewHandler(store ResultStore, engine *quiz.Engine, window domain.Window, auth *Authenticator, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		engine: engine,
		window: window,
		auth:   auth,
		logger: logger,
		now:    time.Now,
	}
}

// Routes assembles the chi router with the standard middleware stack.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Post("/api/login", h.handleLogin)
	r.Get("/api/tournament-status", h.handleTournamentStatus)
	r.Post("/api/tournament-check", h.handleTournamentCheck)
	r.Get("/api/leaderboard", h.handleLeaderboard)
	r.Get("/ws", h.handlePlay)

	r.Group(func(r chi.Router) {
		if h.auth != nil {
			r.Use(h.auth.Middleware)
		}
		r.Post("/api/submitResult", h.handleSubmitResult)
		r.Post("/api/submitTournamentResult", h.handleSubmitTournamentResult)
	})

	return r
}

// requestLogger logs one structured line per request after it completes.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLogin normalizes the display handle and hands back a token. There is
// no password; the handle only labels leaderboard rows.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	username := strings.TrimPrefix(strings.TrimSpace(req.Username), "@")
	if username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}

	resp := map[string]string{"username": username}
	if h.auth != nil {
		token, err := h.auth.IssueToken(username)
		if err != nil {
			h.logger.Error("issue token", "error", err)
			writeError(w, http.StatusInternalServerError, "could not issue token")
			return
		}
		resp["token"] = token
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSubmitResult(w http.ResponseWriter, r *http.Request) {
	var sub domain.ResultSubmission
	if err := readJSON(r, &sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if sub.Username == "" || sub.IQ == 0 {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}
	if claimed := authedUsername(r.Context()); claimed != "" && claimed != sub.Username {
		writeError(w, http.StatusForbidden, "token does not match username")
		return
	}
	if err := h.store.SaveResult(r.Context(), sub); err != nil {
		h.logger.Error("save result", "username", sub.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "could not save result")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Result saved successfully"})
}

func (h *Handler) handleSubmitTournamentResult(w http.ResponseWriter, r *http.Request) {
	var sub domain.TournamentSubmission
	if err := readJSON(r, &sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if sub.Username == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}
	if claimed := authedUsername(r.Context()); claimed != "" && claimed != sub.Username {
		writeError(w, http.StatusForbidden, "token does not match username")
		return
	}
	if h.window.Status(h.now()).Status != domain.TournamentActive {
		writeError(w, http.StatusConflict, "tournament is not active")
		return
	}
	err := h.store.SaveTournamentResult(r.Context(), sub)
	switch {
	case errors.Is(err, domain.ErrAlreadyParticipated):
		// 403 is the contract: clients map it to "already participated".
		writeError(w, http.StatusForbidden, "already participated in this tournament")
	case err != nil:
		h.logger.Error("save tournament result", "username", sub.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "could not save result")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"message": "Tournament result saved successfully"})
	}
}

func (h *Handler) handleTournamentStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.window.Status(h.now()))
}

func (h *Handler) handleTournamentCheck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := readJSON(r, &req); err != nil || req.Username == "" {
		writeError(w, http.StatusBadRequest, "username is required")
		return
	}
	played, err := h.store.HasPlayed(r.Context(), req.Username)
	if err != nil {
		h.logger.Error("tournament check", "username", req.Username, "error", err)
		writeError(w, http.StatusInternalServerError, "could not check participation")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"hasPlayed": played})
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	tf := domain.Timeframe(r.URL.Query().Get("timeframe"))
	if tf == "" {
		tf = domain.TimeframeAll
	}
	if !tf.Valid() {
		writeError(w, http.StatusBadRequest, "unknown timeframe")
		return
	}
	entries, err := h.store.Leaderboard(r.Context(), tf)
	if err != nil {
		h.logger.Error("leaderboard", "timeframe", tf, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load leaderboard")
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"leaderboard": entries})
}

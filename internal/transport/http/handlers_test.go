package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Admuad/concero-quiz/internal/domain"
	"github.com/Admuad/concero-quiz/internal/infra/local"
	"github.com/Admuad/concero-quiz/internal/infra/memory"
	"github.com/Admuad/concero-quiz/internal/questionbank"
	"github.com/Admuad/concero-quiz/internal/quiz"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler(t *testing.T, secret string) (*Handler, *memory.ResultStore) {
	t.Helper()
	store := memory.NewResultStore()
	window := domain.Window{} // zero window: always active
	banks := memory.NewBankRepository(memory.NewStaticBankLoader(questionbank.All()), time.Minute)
	engine := quiz.NewEngine(banks, local.NewSink(store, window), quiz.Config{}, discardLogger())
	return NewHandler(store, engine, window, NewAuthenticator(secret), discardLogger()), store
}

func postJSON(t *testing.T, server *httptest.Server, path string, body any, token string) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, server.URL+path, bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := server.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
}

func TestLoginNormalizesHandle(t *testing.T) {
	h, _ := newTestHandler(t, "")
	server := httptest.NewServer(h.Routes())
	defer server.Close()

	resp := postJSON(t, server, "/api/login", map[string]string{"username": "  @alice "}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["username"] != "alice" {
		t.Fatalf("expected normalized handle alice, got %q", body["username"])
	}

	resp = postJSON(t, server, "/api/login", map[string]string{"username": "   "}, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank handle, got %d", resp.StatusCode)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	h, _ := newTestHandler(t, "test-secret")
	server := httptest.NewServer(h.Routes())
	defer server.Close()

	resp := postJSON(t, server, "/api/login", map[string]string{"username": "bob"}, "")
	var body map[string]string
	decodeBody(t, resp, &body)
	if body["token"] == "" {
		t.Fatalf("expected a token in the login response")
	}
	username, err := h.auth.Verify(body["token"])
	if err != nil || username != "bob" {
		t.Fatalf("token should verify for bob, got %q err=%v", username, err)
	}
}

func TestSubmitResultAndLeaderboard(t *testing.T) {
	h, _ := newTestHandler(t, "")
	server := httptest.NewServer(h.Routes())
	defer server.Close()

	sub := domain.ResultSubmission{Username: "alice", IQ: 120, Correct: 12, TotalQuestions: 15}
	resp := postJSON(t, server, "/api/submitResult", sub, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	getResp, err := server.Client().Get(server.URL + "/api/leaderboard?timeframe=all")
	if err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}
	var board struct {
		Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
	}
	decodeBody(t, getResp, &board)
	if len(board.Leaderboard) != 1 || board.Leaderboard[0].Username != "alice" || board.Leaderboard[0].IQ != 120 {
		t.Fatalf("unexpected leaderboard: %+v", board.Leaderboard)
	}
}

func TestSubmitResultRejectsMissingFields(t *testing.T) {
	h, _ := newTestHandler(t, "")
	server := httptest.NewServer(h.Routes())
	defer server.Close()

	resp := postJSON(t, server, "/api/submitResult", map[string]any{"username": "alice"}, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestSubmitResultAuthEnforced(t *testing.T) {
	h, _ := newTestHandler(t, "test-secret")
	server := httptest.NewServer(h.Routes())
	defer server.Close()

	sub := domain.ResultSubmission{Username: "alice", IQ: 110, Correct: 9, TotalQuestions: 15}

	resp := postJSON(t, server, "/api/submitResult", sub, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	token, err := h.auth.IssueToken("mallory")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	resp = postJSON(t, server, "/api/submitResult", sub, token)
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for mismatched token, got %d", resp.StatusCode)
	}

	token, err = h.auth.IssueToken("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	resp = postJSON(t, server, "/api/submitResult", sub, token)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with matching token, got %d", resp.StatusCode)
	}
}

func TestSubmitTournamentResultSingleAttempt(t *testing.T) {
	h, _ := newTestHandler(t, "")
	server := httptest.NewServer(h.Routes())
	defer server.Close()

	sub := domain.TournamentSubmission{Username: "carol", Score: 130, Correct: 13, TotalQuestions: 15, TimeSpentMS: 90000}

	resp := postJSON(t, server, "/api/submitTournamentResult", sub, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on first submission, got %d", resp.StatusCode)
	}

	resp = postJSON(t, server, "/api/submitTournamentResult", sub, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 on repeat submission, got %d", resp.StatusCode)
	}

	checkResp := postJSON(t, server, "/api/tournament-check", map[string]string{"username": "carol"}, "")
	var check map[string]bool
	decodeBody(t, checkResp, &check)
	if !check["hasPlayed"] {
		t.Fatalf("expected hasPlayed true after submission")
	}
}

func TestSubmitTournamentResultOutsideWindow(t *testing.T) {
	h, _ := newTestHandler(t, "")
	start := time.Now().Add(time.Hour)
	h.window = domain.Window{Start: start, End: start.Add(24 * time.Hour)}
	server := httptest.NewServer(h.Routes())
	defer server.Close()

	sub := domain.TournamentSubmission{Username: "dave", Score: 100, Correct: 8, TotalQuestions: 15}
	resp := postJSON(t, server, "/api/submitTournamentResult", sub, "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 outside the window, got %d", resp.StatusCode)
	}
}

func TestTournamentStatus(t *testing.T) {
	h, _ := newTestHandler(t, "")
	start := time.Now().Add(time.Hour)
	h.window = domain.Window{Start: start}
	server := httptest.NewServer(h.Routes())
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/api/tournament-status")
	if err != nil {
		t.Fatalf("get status: %v", err)
	}
	var status domain.TournamentStatus
	decodeBody(t, resp, &status)
	if status.Status != domain.TournamentUpcoming {
		t.Fatalf("expected upcoming, got %s", status.Status)
	}
	if status.StartTime == nil || !status.StartTime.Equal(start) {
		t.Fatalf("expected start time %v, got %v", start, status.StartTime)
	}
}

func TestLeaderboardRejectsUnknownTimeframe(t *testing.T) {
	h, _ := newTestHandler(t, "")
	server := httptest.NewServer(h.Routes())
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/api/leaderboard?timeframe=fortnightly")
	if err != nil {
		t.Fatalf("get leaderboard: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	h, _ := newTestHandler(t, "")
	server := httptest.NewServer(h.Routes())
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/healthz")
	if err != nil {
		t.Fatalf("get healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Admuad/concero-quiz/internal/domain"
	"github.com/Admuad/concero-quiz/internal/quiz"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Option int `json:"option"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// handlePlay upgrades the connection and plays a full quiz session over it.
// One socket owns one session: the server pushes question, tick, answerResult
// and timeout frames; the client sends answer, advance and finish.
func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	mode := domain.Mode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = domain.ModeStandard
	}
	if username == "" {
		http.Error(w, "missing username", http.StatusBadRequest)
		return
	}
	if h.auth != nil {
		verified, err := h.auth.Verify(r.URL.Query().Get("token"))
		if err != nil || verified != username {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("ws upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	session, err := h.engine.StartSession(r.Context(), domain.User{Username: username}, mode)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: startErrorMessage(err)}})
		return
	}
	defer session.Close()

	send := make(chan any, 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	eventsDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				h.logger.Error("ws write error", "session", session.ID(), "error", err)
				return
			}
		}
	}()

	go func() {
		defer close(eventsDone)
		for {
			select {
			case ev, ok := <-session.Events():
				if !ok {
					return
				}
				select {
				case send <- ev:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	h.readLoop(r, conn, session, send)

	close(closeSignals)
	<-eventsDone
	close(send)
	<-writerDone
}

// readLoop consumes client frames until the socket drops or the quiz finishes.
func (h *Handler) readLoop(r *http.Request, conn *websocket.Conn, session *quiz.Session, send chan<- any) {
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}}
				continue
			}
			if _, err := session.Submit(payload.Option); err != nil {
				send <- outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}}
			}
		case "advance":
			if err := session.Advance(); err != nil {
				send <- outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}}
			}
		case "finish":
			result, err := session.Finish(r.Context())
			if err != nil {
				send <- outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: finishErrorMessage(err)}}
				if errors.Is(err, domain.ErrAlreadyParticipated) {
					return
				}
				continue
			}
			send <- outboundMessage[domain.QuizResult]{Type: "finished", Payload: result}
			return
		default:
			send <- outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}
}

func startErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrTournamentNotActive):
		return "tournament is not active"
	case errors.Is(err, domain.ErrAlreadyParticipated):
		return "already participated in this tournament"
	case errors.Is(err, domain.ErrBankNotFound):
		return "unknown quiz mode"
	default:
		return err.Error()
	}
}

func finishErrorMessage(err error) string {
	if errors.Is(err, domain.ErrAlreadyParticipated) {
		return "already participated in this tournament"
	}
	return err.Error()
}

package chat

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/drinkchain/internal/synthesis"
)

// Session is a single advisor conversation.
type Session struct {
	id     string
	client synthesis.Client
	logger *slog.Logger
	now    func() time.Time

	mu         sync.Mutex
	transcript []Message
	awaiting   bool
}

// NewSession creates a session seeded with the greeting.
func NewSession(client synthesis.Client, logger *slog.Logger) *Session {
	id := uuid.NewString()
	s := &Session{
		id:     id,
		client: client,
		logger: logger.With("session", id),
		now:    time.Now,
	}
	s.transcript = []Message{s.message(synthesis.RoleModel, Greeting)}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:         s.id,
		Awaiting:   s.awaiting,
		Transcript: slices.Clone(s.transcript),
	}
}

// Send runs one turn: the user message is appended, the backend is asked for
// a reply given the prior transcript, and the reply (or Apology on failure)
// is appended as a model message. Blank text returns ErrEmptyMessage and a
// send while another turn is pending returns ErrBusy; neither changes the
// transcript.
func (s *Session) Send(ctx context.Context, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.awaiting {
		s.mu.Unlock()
		return Message{}, ErrBusy
	}

	prior := make([]synthesis.Turn, len(s.transcript))
	for i, m := range s.transcript {
		prior[i] = synthesis.Turn{Role: m.Role, Text: m.Text}
	}

	s.transcript = append(s.transcript, s.message(synthesis.RoleUser, text))
	s.awaiting = true
	s.mu.Unlock()

	reply, err := s.client.Converse(ctx, prior, text)
	if err != nil {
		s.logger.Warn("advisor reply failed", "error", err)
		reply = Apology
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := s.message(synthesis.RoleModel, reply)
	s.transcript = append(s.transcript, msg)
	s.awaiting = false

	return msg, nil
}

func (s *Session) message(role synthesis.Role, text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: s.now(),
	}
}

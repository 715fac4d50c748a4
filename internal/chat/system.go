package chat

import (
	"context"
	"log/slog"
	"sync"

	"github.com/JaimeStill/drinkchain/internal/synthesis"
)

// System is the registry of advisor sessions.
type System interface {
	Handler() *Handler

	// Open creates a session seeded with the greeting.
	Open() Snapshot
	// Find returns a session snapshot. Returns ErrNotFound if absent.
	Find(id string) (Snapshot, error)
	// Send runs one turn in the session.
	Send(ctx context.Context, id, text string) (Message, error)
}

type system struct {
	client synthesis.Client
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

// New creates an empty session registry that converses through client.
func New(client synthesis.Client, logger *slog.Logger) System {
	return &system{
		client:   client,
		logger:   logger.With("system", "chat"),
		sessions: make(map[string]*Session),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Open() Snapshot {
	session := NewSession(s.client, s.logger)

	s.mu.Lock()
	s.sessions[session.ID()] = session
	s.mu.Unlock()

	s.logger.Info("session opened", "id", session.ID())
	return session.Snapshot()
}

func (s *system) Find(id string) (Snapshot, error) {
	session, err := s.session(id)
	if err != nil {
		return Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (s *system) Send(ctx context.Context, id, text string) (Message, error) {
	session, err := s.session(id)
	if err != nil {
		return Message{}, err
	}
	return session.Send(ctx, text)
}

func (s *system) session(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

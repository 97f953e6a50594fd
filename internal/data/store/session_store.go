package store

import (
	"context"
	"fmt"
	"sync"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionStore interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValid(ctx context.Context, token uuid.UUID) (*entity.Session, error)
	Revoke(ctx context.Context, token uuid.UUID) error
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entity.Session // keyed by token
	log      *zap.Logger
}

func NewSessionStore(log *zap.Logger) SessionStore {
	return &sessionStore{
		sessions: make(map[uuid.UUID]*entity.Session),
		log:      log.With(zap.String("store", "session")),
	}
}

func (s *sessionStore) Create(ctx context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.Token] = session
	return nil
}

// FindValid returns nil without error for unknown, expired or revoked tokens.
func (s *sessionStore) FindValid(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok || !session.IsValid() {
		return nil, nil
	}
	return session, nil
}

func (s *sessionStore) Revoke(ctx context.Context, token uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return fmt.Errorf("%w: session", entity.ErrNotFound)
	}
	session.Revoke()
	s.log.Debug("Session revoked", zap.String("user_id", session.UserID.String()))
	return nil
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	BaseSimple
	UserID    uuid.UUID
	Token     uuid.UUID
	ExpiresAt time.Time
	RevokedAt *time.Time
}

func NewSession(userID uuid.UUID, ttl time.Duration) *Session {
	return &Session{
		BaseSimple: NewBaseSimple(),
		UserID:     userID,
		Token:      uuid.New(),
		ExpiresAt:  nowFunc().Add(ttl),
	}
}

func (s *Session) IsValid() bool {
	return s.RevokedAt == nil && nowFunc().Before(s.ExpiresAt)
}

func (s *Session) Revoke() {
	now := nowFunc()
	s.RevokedAt = &now
}

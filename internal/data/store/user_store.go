package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserStore interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}

type userStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*entity.User
	log   *zap.Logger
}

func NewUserStore(log *zap.Logger) UserStore {
	return &userStore{
		users: make(map[uuid.UUID]*entity.User),
		log:   log.With(zap.String("store", "user")),
	}
}

func (s *userStore) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Contact.Email, user.Contact.Email) {
			return fmt.Errorf("%w: email %s", entity.ErrDuplicate, user.Contact.Email)
		}
		if existing.Username == user.Username {
			return fmt.Errorf("%w: username %s", entity.ErrDuplicate, user.Username)
		}
	}

	s.users[user.ID] = user
	s.log.Debug("User stored", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *userStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Contact.Email, email) {
			return user, nil
		}
	}
	return nil, nil
}

func (s *userStore) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (s *userStore) List(ctx context.Context) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*entity.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

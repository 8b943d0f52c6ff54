package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/models"
)

// memoryUserRepository keeps users in process memory, keyed by username.
// It is used when no database DSN is configured; data is lost on restart.
type memoryUserRepository struct {
	mu          sync.RWMutex
	users       map[string]models.User
	idGenerator IDGenerator
	now         func() time.Time
}

func NewMemoryUserRepository(idGenerator IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:       make(map[string]models.User),
		idGenerator: idGenerator,
		now:         time.Now,
	}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return models.User{}, ErrLoginAlreadyExists
	}

	if user.UserID == "" {
		user.UserID = r.idGenerator.Generate()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.now().UTC()
	}

	r.users[user.Username] = user
	return user, nil
}

func (r *memoryUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

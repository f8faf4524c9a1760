package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/models"
)

type userRepository struct {
	mu     sync.RWMutex
	users  map[int64]models.User
	nextID int64

	logger *logger.Logger
}

func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		users:  make(map[int64]models.User),
		nextID: 1,
		logger: logger,
	}
}

func (r *userRepository) Create(_ context.Context, insert models.InsertUser) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := models.User{
		ID:        r.nextID,
		Username:  insert.Username,
		Password:  insert.Password,
		Email:     insert.Email,
		FullName:  insert.FullName,
		AvatarURL: insert.AvatarURL,
	}
	r.users[user.ID] = user
	r.nextID++

	return user, nil
}

func (r *userRepository) Get(_ context.Context, id int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// FindByUsername is a deliberate linear scan: uniqueness is checked only at
// creation time, so no secondary index is maintained.
func (r *userRepository) FindByUsername(_ context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

func (r *userRepository) First(_ context.Context) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var first models.User
	found := false
	for _, user := range r.users {
		if !found || user.ID < first.ID {
			first = user
			found = true
		}
	}

	if !found {
		return models.User{}, ErrNoUsersRegistered
	}
	return first, nil
}

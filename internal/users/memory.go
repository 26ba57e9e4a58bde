package users

import (
	"context"
	"strings"

	"github.com/demoapps/go-services/internal/store"
)

// MemoryUserRepository keeps users in process memory.
type MemoryUserRepository struct {
	items *store.Memory[User]
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{items: store.NewMemory[User]()}
}

func (r *MemoryUserRepository) Create(_ context.Context, u *User) error {
	ok := r.items.InsertUnique(u.ID, *u, func(existing, v User) bool {
		return existing.Username == v.Username || strings.EqualFold(existing.Email, v.Email)
	})
	if !ok {
		return ErrUserExists
	}
	return nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := r.items.FindOne(func(u User) bool { return strings.EqualFold(u.Email, email) })
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := r.items.Get(id)
	if !ok {
		return nil, nil
	}
	return &u, nil
}

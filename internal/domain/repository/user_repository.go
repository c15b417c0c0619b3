package repository

import (
	"context"
	"errors"

	"github.com/rakafirdaus/go-blog-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a uniqueness constraint is violated.
	ErrDuplicate = errors.New("duplicate record")
	// ErrVersionConflict is returned when an optimistic aggregate write loses
	// the race against a concurrent writer; callers should reload and retry.
	ErrVersionConflict = errors.New("version conflict")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByIDs returns the users for the given ids, keyed by id. Missing ids
	// are simply absent from the map.
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
}

package repository

import (
	"context"

	"github.com/rakafirdaus/go-blog-api/internal/domain/entity"
)

// BlogRepository persists blog aggregates. The aggregate (blog plus its
// embedded comment/reply thread) is read and written as one unit; Update
// performs a compare-and-swap on the aggregate version and returns
// ErrVersionConflict when a concurrent writer got there first.
type BlogRepository interface {
	Create(ctx context.Context, b *entity.Blog) error
	GetByID(ctx context.Context, id string) (*entity.Blog, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*entity.Blog, error)
	Update(ctx context.Context, b *entity.Blog) error
	Delete(ctx context.Context, id string) error
}

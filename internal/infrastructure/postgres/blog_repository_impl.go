package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakafirdaus/go-blog-api/internal/domain/entity"
	repo "github.com/rakafirdaus/go-blog-api/internal/domain/repository"
)

// BlogRepository stores each blog aggregate in a single row: scalar columns
// for the blog fields plus a JSONB document holding the embedded comment/reply
// thread. A version column guards every write so that two concurrent
// read-modify-persist cycles cannot silently overwrite each other.
type BlogRepository struct {
	pool *pgxpool.Pool
}

func NewBlogRepository(pool *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{pool: pool}
}

func (r *BlogRepository) Create(ctx context.Context, b *entity.Blog) error {
	if b.Comments == nil {
		b.Comments = []entity.Comment{}
	}
	doc, err := json.Marshal(b.Comments)
	if err != nil {
		return err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO blogs (title, description, content, image, author_id, comments)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, version, created_at
	`, b.Title, b.Description, b.Content, b.Image, b.AuthorID, doc)

	return row.Scan(&b.ID, &b.Version, &b.CreatedAt)
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, description, content, image, author_id, comments, version, created_at
		FROM blogs
		WHERE id = $1
	`, id)
	return scanBlog(row)
}

func (r *BlogRepository) ListByAuthor(ctx context.Context, authorID string) ([]*entity.Blog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, content, image, author_id, comments, version, created_at
		FROM blogs
		WHERE author_id = $1
		ORDER BY created_at DESC
	`, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := make([]*entity.Blog, 0)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

// Update writes the whole aggregate back with a compare-and-swap on version.
// A zero row count means either the blog is gone or another writer bumped the
// version first; the two cases are told apart with a follow-up existence check.
func (r *BlogRepository) Update(ctx context.Context, b *entity.Blog) error {
	doc, err := json.Marshal(b.Comments)
	if err != nil {
		return err
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE blogs
		SET title = $1, description = $2, content = $3, image = $4,
		    comments = $5, version = version + 1
		WHERE id = $6 AND version = $7
	`, b.Title, b.Description, b.Content, b.Image, doc, b.ID, b.Version)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM blogs WHERE id = $1)`, b.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return repo.ErrNotFound
		}
		return repo.ErrVersionConflict
	}
	b.Version++
	return nil
}

// Delete removes the aggregate row; the embedded thread goes with it.
func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func scanBlog(row pgx.Row) (*entity.Blog, error) {
	b := &entity.Blog{}
	var doc []byte
	if err := row.Scan(&b.ID, &b.Title, &b.Description, &b.Content, &b.Image,
		&b.AuthorID, &doc, &b.Version, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(doc, &b.Comments); err != nil {
		return nil, err
	}
	if b.Comments == nil {
		b.Comments = []entity.Comment{}
	}
	return b, nil
}

var _ repo.BlogRepository = (*BlogRepository)(nil)

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakafirdaus/go-blog-api/internal/domain/entity"
	repo "github.com/rakafirdaus/go-blog-api/internal/domain/repository"
)

const pgUniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, profile_image)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, u.Email, u.Password, u.ProfileImage)

	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return repo.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, profile_image, created_at
		FROM users
		WHERE id = $1
	`, id)

	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.ProfileImage, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, profile_image, created_at
		FROM users
		WHERE email = $1
	`, email)

	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.ProfileImage, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return u, nil
}

// GetByIDs fetches users in one round trip for author resolution on blog reads.
func (r *UserRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	out := make(map[string]*entity.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, email, password_hash, profile_image, created_at
		FROM users
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		u := &entity.User{}
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &u.ProfileImage, &u.CreatedAt); err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	return out, rows.Err()
}

var _ repo.UserRepository = (*UserRepository)(nil)

package application

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rakafirdaus/go-blog-api/internal/domain/entity"
	repo "github.com/rakafirdaus/go-blog-api/internal/domain/repository"
)

// In-memory repository fakes mirroring the postgres implementations,
// including the version CAS on blog updates.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memUserRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]*entity.User, len(ids))
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			cp := *u
			out[id] = &cp
		}
	}
	return out, nil
}

func (m *memUserRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

type memBlogRepo struct {
	mu    sync.Mutex
	blogs map[string]*entity.Blog
	seq   int
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{blogs: make(map[string]*entity.Blog)}
}

func cloneBlog(b *entity.Blog) *entity.Blog {
	raw, _ := json.Marshal(b)
	cp := &entity.Blog{}
	_ = json.Unmarshal(raw, cp)
	cp.Version = b.Version
	return cp
}

func (m *memBlogRepo) Create(_ context.Context, b *entity.Blog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	b.ID = uuid.NewString()
	b.Version = 1
	// distinct timestamps keep newest-first ordering deterministic
	b.CreatedAt = time.Now().UTC().Add(time.Duration(m.seq) * time.Millisecond)
	if b.Comments == nil {
		b.Comments = []entity.Comment{}
	}
	m.blogs[b.ID] = cloneBlog(b)
	return nil
}

func (m *memBlogRepo) GetByID(_ context.Context, id string) (*entity.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blogs[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return cloneBlog(b), nil
}

func (m *memBlogRepo) ListByAuthor(_ context.Context, authorID string) ([]*entity.Blog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Blog, 0)
	for _, b := range m.blogs {
		if b.AuthorID == authorID {
			out = append(out, cloneBlog(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memBlogRepo) Update(_ context.Context, b *entity.Blog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.blogs[b.ID]
	if !ok {
		return repo.ErrNotFound
	}
	if existing.Version != b.Version {
		return repo.ErrVersionConflict
	}
	b.Version++
	cp := cloneBlog(b)
	cp.CreatedAt = existing.CreatedAt
	m.blogs[b.ID] = cp
	return nil
}

func (m *memBlogRepo) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blogs[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.blogs, id)
	return nil
}

// conflictingBlogRepo wraps memBlogRepo and forces the first n Update calls
// to lose the version race, exercising the service's retry loop.
type conflictingBlogRepo struct {
	*memBlogRepo
	conflicts int
}

func (c *conflictingBlogRepo) Update(ctx context.Context, b *entity.Blog) error {
	if c.conflicts > 0 {
		c.conflicts--
		return repo.ErrVersionConflict
	}
	return c.memBlogRepo.Update(ctx, b)
}

var (
	_ repo.UserRepository = (*memUserRepo)(nil)
	_ repo.BlogRepository = (*memBlogRepo)(nil)
	_ repo.BlogRepository = (*conflictingBlogRepo)(nil)
)

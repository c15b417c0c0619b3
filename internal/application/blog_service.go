package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rakafirdaus/go-blog-api/internal/cache"
	"github.com/rakafirdaus/go-blog-api/internal/domain/entity"
	repo "github.com/rakafirdaus/go-blog-api/internal/domain/repository"
)

// maxCASRetries bounds the reload-and-retry loop on aggregate version conflicts.
const maxCASRetries = 3

// BlogService owns blog aggregates and their embedded comment/reply threads.
// Mutations are read-modify-persist cycles against the aggregate; the
// repository's version CAS plus the retry loop here keeps concurrent appends
// from overwriting each other. Ownership checks for update/delete also live
// here: the middleware only authenticates.
type BlogService struct {
	Blogs  repo.BlogRepository
	Users  repo.UserRepository
	Cache  *cache.BlogCache
	Logger *logrus.Logger
}

func NewBlogService(blogs repo.BlogRepository, users repo.UserRepository, blogCache *cache.BlogCache, logger *logrus.Logger) *BlogService {
	return &BlogService{Blogs: blogs, Users: users, Cache: blogCache, Logger: logger}
}

// BlogView is a blog aggregate with every author reference resolved to the
// public user view, ready to serialize.
type BlogView struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Content     string            `json:"content"`
	Image       string            `json:"image"`
	Author      entity.PublicUser `json:"author"`
	Comments    []CommentView     `json:"comments"`
	CreatedAt   time.Time         `json:"created_at"`
}

type CommentView struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	Author    entity.PublicUser `json:"author"`
	Replies   []ReplyView       `json:"replies"`
	CreatedAt time.Time         `json:"created_at"`
}

type ReplyView struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	Author    entity.PublicUser `json:"author"`
	CreatedAt time.Time         `json:"created_at"`
}

type CreateBlogInput struct {
	Title       string
	Description string
	Content     string
	Image       string
}

// UpdateBlogInput is a partial patch: only non-empty fields replace the
// stored values.
type UpdateBlogInput struct {
	Title       string
	Description string
	Content     string
	Image       string
}

// Create persists a new blog with an empty thread, owned by authorID.
func (s *BlogService) Create(ctx context.Context, authorID string, in CreateBlogInput) (*BlogView, error) {
	if in.Title == "" || in.Description == "" || in.Content == "" || in.Image == "" {
		return nil, ErrValidation
	}

	b := &entity.Blog{
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Image:       in.Image,
		AuthorID:    authorID,
		Comments:    []entity.Comment{},
	}
	if err := s.Blogs.Create(ctx, b); err != nil {
		return nil, err
	}
	s.invalidate(ctx, b.ID, authorID)

	views, err := s.buildViews(ctx, []*entity.Blog{b})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// ListByAuthor returns the caller's blogs, newest first.
func (s *BlogService) ListByAuthor(ctx context.Context, authorID string) ([]BlogView, error) {
	if s.Cache != nil {
		var cached []BlogView
		if ok, err := cache.GetList(ctx, s.Cache, authorID, &cached); err == nil && ok {
			return cached, nil
		}
	}

	blogs, err := s.Blogs.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	views, err := s.buildViews(ctx, blogs)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := cache.SetList(ctx, s.Cache, authorID, views); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("author_id", authorID).Warn("blog list cache write failed")
		}
	}
	return views, nil
}

// GetByID returns one blog with authors resolved at every nesting level.
func (s *BlogService) GetByID(ctx context.Context, id string) (*BlogView, error) {
	if s.Cache != nil {
		var cached BlogView
		if ok, err := cache.GetView(ctx, s.Cache, id, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	b, err := s.Blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	views, err := s.buildViews(ctx, []*entity.Blog{b})
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := cache.SetView(ctx, s.Cache, id, views[0]); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("blog_id", id).Warn("blog view cache write failed")
		}
	}
	return &views[0], nil
}

// Update applies a partial patch to a blog owned by callerID.
func (s *BlogService) Update(ctx context.Context, id, callerID string, in UpdateBlogInput) (*BlogView, error) {
	var updated *entity.Blog
	err := s.mutate(ctx, id, func(b *entity.Blog) error {
		if b.AuthorID != callerID {
			return ErrForbidden
		}
		if in.Title != "" {
			b.Title = in.Title
		}
		if in.Description != "" {
			b.Description = in.Description
		}
		if in.Content != "" {
			b.Content = in.Content
		}
		if in.Image != "" {
			b.Image = in.Image
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id, updated.AuthorID)

	views, err := s.buildViews(ctx, []*entity.Blog{updated})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Delete removes a blog aggregate, thread included, after an ownership check.
func (s *BlogService) Delete(ctx context.Context, id, callerID string) error {
	b, err := s.Blogs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if b.AuthorID != callerID {
		return ErrForbidden
	}
	if err := s.Blogs.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(ctx, id, b.AuthorID)
	return nil
}

// AddComment appends a comment to the blog's thread. Any authenticated user
// may comment; thread participation is not ownership-gated.
func (s *BlogService) AddComment(ctx context.Context, blogID, authorID, text string) (*CommentView, error) {
	if text == "" {
		return nil, ErrValidation
	}

	c := entity.Comment{
		ID:        uuid.NewString(),
		Text:      text,
		AuthorID:  authorID,
		Replies:   []entity.Reply{},
		CreatedAt: time.Now().UTC(),
	}

	var ownerID string
	err := s.mutate(ctx, blogID, func(b *entity.Blog) error {
		b.AppendComment(c)
		ownerID = b.AuthorID
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, blogID, ownerID)

	view := CommentView{ID: c.ID, Text: c.Text, Replies: []ReplyView{}, CreatedAt: c.CreatedAt}
	view.Author = s.resolveOne(ctx, authorID)
	return &view, nil
}

// AddReply appends a reply to one comment in the blog's thread. A missing
// blog and a missing comment surface as the same ErrNotFound: the composite
// path (blogID, commentID) either resolves or it does not.
func (s *BlogService) AddReply(ctx context.Context, blogID, commentID, authorID, text string) (*ReplyView, error) {
	if text == "" {
		return nil, ErrValidation
	}

	r := entity.Reply{
		ID:        uuid.NewString(),
		Text:      text,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}

	var ownerID string
	err := s.mutate(ctx, blogID, func(b *entity.Blog) error {
		if err := b.AppendReply(commentID, r); err != nil {
			return ErrNotFound
		}
		ownerID = b.AuthorID
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, blogID, ownerID)

	view := ReplyView{ID: r.ID, Text: r.Text, CreatedAt: r.CreatedAt}
	view.Author = s.resolveOne(ctx, authorID)
	return &view, nil
}

// mutate runs one read-modify-persist cycle against the aggregate and
// retries on version conflicts with a fresh snapshot each time, so two
// concurrent appends both land instead of one silently overwriting the other.
func (s *BlogService) mutate(ctx context.Context, blogID string, apply func(*entity.Blog) error) error {
	for attempt := 0; ; attempt++ {
		b, err := s.Blogs.GetByID(ctx, blogID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := apply(b); err != nil {
			return err
		}

		err = s.Blogs.Update(ctx, b)
		if err == nil {
			return nil
		}
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		if errors.Is(err, repo.ErrVersionConflict) && attempt < maxCASRetries {
			if s.Logger != nil {
				s.Logger.WithField("blog_id", blogID).Debug("aggregate version conflict, retrying")
			}
			continue
		}
		return err
	}
}

// buildViews resolves author references at all three nesting levels with one
// batched user lookup.
func (s *BlogService) buildViews(ctx context.Context, blogs []*entity.Blog) ([]BlogView, error) {
	idSet := make(map[string]struct{})
	for _, b := range blogs {
		idSet[b.AuthorID] = struct{}{}
		for _, c := range b.Comments {
			idSet[c.AuthorID] = struct{}{}
			for _, r := range c.Replies {
				idSet[r.AuthorID] = struct{}{}
			}
		}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.Users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	public := func(id string) entity.PublicUser {
		if u, ok := users[id]; ok {
			return u.Public()
		}
		return entity.PublicUser{ID: id}
	}

	views := make([]BlogView, 0, len(blogs))
	for _, b := range blogs {
		v := BlogView{
			ID:          b.ID,
			Title:       b.Title,
			Description: b.Description,
			Content:     b.Content,
			Image:       b.Image,
			Author:      public(b.AuthorID),
			Comments:    make([]CommentView, 0, len(b.Comments)),
			CreatedAt:   b.CreatedAt,
		}
		for _, c := range b.Comments {
			cv := CommentView{
				ID:        c.ID,
				Text:      c.Text,
				Author:    public(c.AuthorID),
				Replies:   make([]ReplyView, 0, len(c.Replies)),
				CreatedAt: c.CreatedAt,
			}
			for _, r := range c.Replies {
				cv.Replies = append(cv.Replies, ReplyView{
					ID:        r.ID,
					Text:      r.Text,
					Author:    public(r.AuthorID),
					CreatedAt: r.CreatedAt,
				})
			}
			v.Comments = append(v.Comments, cv)
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *BlogService) resolveOne(ctx context.Context, userID string) entity.PublicUser {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil || u == nil {
		return entity.PublicUser{ID: userID}
	}
	return u.Public()
}

func (s *BlogService) invalidate(ctx context.Context, blogID, authorID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateBlog(ctx, blogID); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("blog_id", blogID).Warn("blog view cache invalidation failed")
	}
	if err := s.Cache.InvalidateList(ctx, authorID); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("author_id", authorID).Warn("blog list cache invalidation failed")
	}
}

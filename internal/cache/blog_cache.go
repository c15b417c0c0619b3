package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rakafirdaus/go-blog-api/pkg/helpers"
)

const (
	keyBlogView = "blog:view:"
	keyBlogList = "blog:list:"
)

// BlogCache keeps rendered blog views in Redis so repeated reads skip the
// aggregate load and author resolution. It is a read-through cache only:
// Postgres stays the source of truth and every mutation invalidates the
// affected keys.
type BlogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewBlogCache(rdb *redis.Client, ttl time.Duration) *BlogCache {
	return &BlogCache{rdb: rdb, ttl: ttl}
}

// GetView loads a cached blog view into dest; ok is false on a miss.
func GetView[T any](ctx context.Context, c *BlogCache, blogID string, dest *T) (bool, error) {
	return helpers.RedisGetJSON(ctx, c.rdb, keyBlogView+blogID, dest)
}

func SetView[T any](ctx context.Context, c *BlogCache, blogID string, view T) error {
	return helpers.RedisSetJSON(ctx, c.rdb, keyBlogView+blogID, view, c.ttl)
}

// GetList loads an author's cached blog list into dest; ok is false on a miss.
func GetList[T any](ctx context.Context, c *BlogCache, authorID string, dest *T) (bool, error) {
	return helpers.RedisGetJSON(ctx, c.rdb, keyBlogList+authorID, dest)
}

func SetList[T any](ctx context.Context, c *BlogCache, authorID string, list T) error {
	return helpers.RedisSetJSON(ctx, c.rdb, keyBlogList+authorID, list, c.ttl)
}

// InvalidateBlog drops the cached view of one blog.
func (c *BlogCache) InvalidateBlog(ctx context.Context, blogID string) error {
	return helpers.RedisDel(ctx, c.rdb, keyBlogView+blogID)
}

// InvalidateList drops an author's cached blog list.
func (c *BlogCache) InvalidateList(ctx context.Context, authorID string) error {
	return helpers.RedisDel(ctx, c.rdb, keyBlogList+authorID)
}

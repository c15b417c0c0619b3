package router

import (
	"github.com/rakafirdaus/go-blog-api/internal/application"
	"github.com/rakafirdaus/go-blog-api/internal/cache"
	"github.com/rakafirdaus/go-blog-api/internal/container"
	pginfra "github.com/rakafirdaus/go-blog-api/internal/infrastructure/postgres"
	handlers "github.com/rakafirdaus/go-blog-api/internal/interface/http"
	"github.com/rakafirdaus/go-blog-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	logger := container.GetLogger()
	users := pginfra.NewUserRepository(container.GetPGPool())
	blogs := pginfra.NewBlogRepository(container.GetPGPool())

	var blogCache *cache.BlogCache
	if rdb := container.GetRedis(); rdb != nil {
		blogCache = cache.NewBlogCache(rdb, container.GetConfig().BlogCacheTTL)
	}

	authSvc := application.NewAuthService(users, container.GetJWT(), logger)
	blogSvc := application.NewBlogService(blogs, users, blogCache, logger)

	authHandler := handlers.NewAuthHandler(authSvc, container.GetMedia(), logger)
	blogHandler := handlers.NewBlogHandler(blogSvc, container.GetMedia(), logger)

	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewBlogModule(blogHandler, container.GetJWT()))
}

package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rakafirdaus/go-blog-api/internal/container"
	handlers "github.com/rakafirdaus/go-blog-api/internal/interface/http"
	"github.com/rakafirdaus/go-blog-api/internal/interface/middleware"
	"github.com/rakafirdaus/go-blog-api/pkg/helpers"
)

// BlogModule wires the blog CRUD and comment/reply thread routes. Every
// route is gated by the bearer auth middleware; ownership checks happen in
// the blog service.
type BlogModule struct {
	Handler *handlers.BlogHandler
	JWT     *helpers.JWTManager
}

func NewBlogModule(h *handlers.BlogHandler, jwt *helpers.JWTManager) *BlogModule {
	return &BlogModule{Handler: h, JWT: jwt}
}

func (m *BlogModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/blogs")
	auth.Use(middleware.Auth(m.JWT))
	// Softer per-user limiter on the protected surface
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)

		auth.POST("/:id/comments", m.Handler.AddComment)
		auth.POST("/:id/comments/:commentId/replies", m.Handler.AddReply)
	}
}

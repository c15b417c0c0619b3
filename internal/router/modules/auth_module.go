package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rakafirdaus/go-blog-api/internal/container"
	handlers "github.com/rakafirdaus/go-blog-api/internal/interface/http"
	"github.com/rakafirdaus/go-blog-api/internal/interface/middleware"
)

// AuthModule wires the two unauthenticated entry routes:
// POST /api/users/register and POST /api/users/login.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits; the limiter fails open when
	// redis is unavailable, so auth itself never depends on it.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/users/register", registerLimiter, m.Handler.Register)
	rg.POST("/users/login", loginLimiter, m.Handler.Login)
}

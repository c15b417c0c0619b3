package modules

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rakafirdaus/go-blog-api/internal/container"
	"github.com/rakafirdaus/go-blog-api/internal/interface/middleware"
	"github.com/rakafirdaus/go-blog-api/pkg/response"
)

// HealthModule exposes a liveness/readiness probe that pings the store
// handles the process was bootstrapped with.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)
	rg.GET("/health", rl, func(c *gin.Context) {
		ctx := c.Request.Context()
		status := gin.H{"postgres": "ok", "redis": "ok"}
		code := http.StatusOK

		if pool := container.GetPGPool(); pool != nil {
			if err := pool.Ping(ctx); err != nil {
				status["postgres"] = "down"
				code = http.StatusServiceUnavailable
			}
		}
		if rdb := container.GetRedis(); rdb != nil {
			if err := rdb.Ping(ctx).Err(); err != nil {
				status["redis"] = "down"
			}
		}

		if code == http.StatusOK {
			resp := response.Success(c, code, status, "healthy", nil)
			c.JSON(resp.Status, resp)
			return
		}
		resp := response.Error[any](c, code, "unhealthy", status)
		c.JSON(resp.Status, resp)
	})
}

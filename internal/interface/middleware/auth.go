package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rakafirdaus/go-blog-api/pkg/helpers"
	"github.com/rakafirdaus/go-blog-api/pkg/response"
)

// CtxUserIDKey is the gin context key holding the authenticated caller's id.
const CtxUserIDKey = "userID"

// Auth extracts the bearer token from the Authorization header and verifies
// it. A missing token is 401; a token that fails signature or expiry checks
// is 403. On success the caller's user id is set in the gin context. This is
// authentication only; per-resource ownership checks belong to the services.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			resp := response.Error[any](c, http.StatusUnauthorized, "missing bearer token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			resp := response.Error[any](c, http.StatusForbidden, "invalid or expired token", nil)
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

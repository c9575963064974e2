package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CorralesK/TubeKidsBackend/internal/core/auth"
	"github.com/CorralesK/TubeKidsBackend/internal/transport/http/response"
)

// AuthBearer verifies the bearer credential and resolves it to a user id
// before any handler logic runs. Absent or unverifiable tokens are 401.
func AuthBearer(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token")
			return
		}
		c.Set("userId", claims.UID)
		c.Next()
	}
}

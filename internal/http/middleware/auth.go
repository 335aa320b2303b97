package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Abdukarim17/fluentia/internal/auth"
	"github.com/Abdukarim17/fluentia/internal/store"
)

const emailKey = "userEmail"

// AuthMiddleware verifies the bearer token and requires its subject email to
// resolve to a stored user.
func AuthMiddleware(jwtSecret string, users store.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			unauthorized(c)
			return
		}

		tokenStr := strings.TrimPrefix(h, "Bearer ")
		email, err := auth.EmailFromToken(tokenStr, jwtSecret)
		if err != nil {
			unauthorized(c)
			return
		}

		if _, err := users.ByEmail(c.Request.Context(), email); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				unauthorized(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
			return
		}

		c.Set(emailKey, email)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Could not validate credentials"})
}

func MustEmail(c *gin.Context) string {
	v, _ := c.Get(emailKey)
	return v.(string)
}

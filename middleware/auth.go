package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/pbrudny/financial-decisions-retro/models"
)

// RequireParty resolves the caller to exactly one of the two parties and
// stores it under "user_id" in the gin context. Identity comes from either
// an X-User-Id header (A or B) or a bearer token issued by /auth/login.
func RequireParty() gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("X-User-Id"); header != "" {
			user := models.UserID(header)
			if !user.Valid() {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-User-Id must be A or B"})
				return
			}
			c.Set("user_id", user)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-User-Id header or bearer token required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token auth not configured"})
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		uid, _ := claims["user_id"].(string)
		user := models.UserID(uid)
		if !user.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("user_id", user)
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ouroverde-system/internal/utils"
)

const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// JWTAuth guards a route group: every request needs a valid Bearer token.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Não autenticado"})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Cabeçalho de autorização inválido"})
			return
		}

		claims, err := utils.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token inválido ou expirado"})
			return
		}

		c.Set(ContextUserID, claims.UserId)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}

package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"claritel/claritel_go_admin_service/config"
	"claritel/claritel_go_admin_service/storage"
)

// AuthMiddleware accepts "Authorization: Bearer <token>" where the token
// is either the bootstrap token from config or an issued "<id>.<secret>"
// pair checked against its stored hash.
func AuthMiddleware(cfg config.Config, strg storage.StorageI) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authorization required"})
			return
		}

		if cfg.BootstrapToken != "" &&
			subtle.ConstantTimeCompare([]byte(token), []byte(cfg.BootstrapToken)) == 1 {
			c.Next()
			return
		}

		id, secret, ok := strings.Cut(token, ".")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		apiToken, err := strg.ApiToken().GetByID(c.Request.Context(), id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(apiToken.SecretHash), []byte(secret)); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set("token_id", apiToken.Id)
		c.Next()
	}
}

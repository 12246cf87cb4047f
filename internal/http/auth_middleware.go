package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"career-compass/internal/service"
)

const authClaimsKey = "auth_claims"

// AuthMiddleware valida el bearer token emitido por el servicio de cuentas
// externo y guarda los claims en el contexto.
func AuthMiddleware(verifier *service.AuthVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
			c.Abort()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		claims, err := verifier.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// GetAuthClaims obtiene los claims validados desde el contexto.
func GetAuthClaims(c *gin.Context) (service.AuthClaims, bool) {
	val, ok := c.Get(authClaimsKey)
	if !ok {
		return service.AuthClaims{}, false
	}
	claims, ok := val.(service.AuthClaims)
	return claims, ok
}

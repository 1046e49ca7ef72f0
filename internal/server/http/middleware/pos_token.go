package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uubo/memberhub/internal/server/http/dto"
)

// AccessTokenHeader carries the POS shared secret.
const AccessTokenHeader = "x-access-token"

// SmaregiTokenGate rejects POS requests whose x-access-token header does
// not exactly match the configured secret. Failures get the fixed POS
// error envelope; a match passes through without any side effect.
func SmaregiTokenGate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(AccessTokenHeader) != secret {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewSmaregiError("UNAUTHORIZED", "アクセストークンが無効です。"))
			return
		}
		c.Next()
	}
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/uubo/memberhub/internal/domain/errors"
	"github.com/uubo/memberhub/internal/domain/model"
	"github.com/uubo/memberhub/internal/server/http/dto"
	pkgAuth "github.com/uubo/memberhub/internal/pkg/auth"
)

const (
	// MemberIDContextKey is a gin context key for the authenticated member id.
	MemberIDContextKey = "memberID"
	// AdminEmailContextKey is a gin context key for the verified admin email.
	AdminEmailContextKey = "adminEmail"
	authCookieName       = "memberhub_token"
)

// TokenParser validates an auth token and returns the member id.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// MemberResolver loads a member record by id.
type MemberResolver interface {
	MemberByID(ctx context.Context, id string) (*model.Member, error)
}

// AuthRequired ensures a member is authenticated before accessing handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		memberID, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(MemberIDContextKey, memberID)
		c.Next()
	}
}

// AdminRequired allows only members whose email is on the configured
// allowlist. Must run after AuthRequired.
func AdminRequired(resolver MemberResolver, adminEmails []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		allowed[strings.ToLower(email)] = struct{}{}
	}

	return func(c *gin.Context) {
		memberID, ok := c.Get(MemberIDContextKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.AdminError{Error: "認証が必要です"})
			return
		}

		member, err := resolver.MemberByID(c.Request.Context(), memberID.(string))
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.AdminError{Error: "認証に失敗しました"})
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		if _, ok := allowed[strings.ToLower(member.Email)]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.AdminError{Error: "管理者権限がありません"})
			return
		}

		c.Set(AdminEmailContextKey, member.Email)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

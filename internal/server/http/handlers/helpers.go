package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/uubo/memberhub/internal/server/http/middleware"
)

// CurrentMemberID extracts the authenticated member identifier from context.
func CurrentMemberID(c *gin.Context) string {
	val, ok := c.Get(middleware.MemberIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

// CurrentAdminEmail extracts the verified admin email from context.
func CurrentAdminEmail(c *gin.Context) string {
	val, ok := c.Get(middleware.AdminEmailContextKey)
	if !ok {
		return ""
	}
	email, _ := val.(string)
	return email
}

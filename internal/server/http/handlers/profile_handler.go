package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/uubo/memberhub/internal/domain/errors"
	"github.com/uubo/memberhub/internal/server/http/dto"
)

// ProfileHandler manages the authenticated member's own record.
type ProfileHandler struct {
	facade AccountFacade
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(facade AccountFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Show handles GET /api/user/profile.
func (h *ProfileHandler) Show(c *gin.Context) {
	memberID := CurrentMemberID(c)
	member, err := h.facade.MemberByID(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.NewProfileResponse(member))
}

// Update handles PATCH /api/user/profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	memberID := CurrentMemberID(c)
	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateProfile(c.Request.Context(), memberID, req.ToPatch()); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

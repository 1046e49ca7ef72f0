package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/uubo/memberhub/internal/domain/errors"
	"github.com/uubo/memberhub/internal/domain/model"
	"github.com/uubo/memberhub/internal/server/http/dto"
)

// AdminHandler manages the admin content endpoints.
type AdminHandler struct {
	facade ContentFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade ContentFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Settings handles GET /api/admin/settings.
func (h *AdminHandler) Settings(c *gin.Context) {
	doc, err := h.facade.SiteSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.AdminError{Error: "設定の取得に失敗しました"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdateSettings handles POST /api/admin/settings.
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var doc model.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, dto.AdminError{Error: "設定の形式が不正です"})
		return
	}

	if err := h.facade.UpdateSiteSettings(c.Request.Context(), doc); err != nil {
		if errors.Is(err, domainErrors.ErrMissingParameter) {
			c.JSON(http.StatusBadRequest, dto.AdminError{Error: "設定の形式が不正です"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.AdminError{Error: "設定の更新に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, dto.AdminAck{Success: true, Message: "設定を更新しました"})
}

// Page handles GET /api/admin/pages/:pageId.
func (h *AdminHandler) Page(c *gin.Context) {
	pageID := c.Param("pageId")
	doc, err := h.facade.Page(c.Request.Context(), pageID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.AdminError{Error: "ページが見つかりません"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.AdminError{Error: "ページの取得に失敗しました"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// UpdatePage handles POST /api/admin/pages/:pageId.
func (h *AdminHandler) UpdatePage(c *gin.Context) {
	pageID := c.Param("pageId")
	var content model.Document
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, dto.AdminError{Error: "ページの形式が不正です"})
		return
	}

	if err := h.facade.SavePage(c.Request.Context(), pageID, content, CurrentAdminEmail(c)); err != nil {
		if errors.Is(err, domainErrors.ErrMissingParameter) {
			c.JSON(http.StatusBadRequest, dto.AdminError{Error: "ページの形式が不正です"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.AdminError{Error: "ページの更新に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, dto.AdminAck{Success: true, Message: "ページを更新しました"})
}

// Pages handles GET /api/admin/pages.
func (h *AdminHandler) Pages(c *gin.Context) {
	pages, err := h.facade.Pages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.AdminError{Error: "ページ一覧の取得に失敗しました"})
		return
	}

	// The admin UI expects each row as the page content with its id
	// merged in at the top level.
	response := make([]model.Document, 0, len(pages))
	for _, page := range pages {
		doc := make(model.Document, len(page.Content)+1)
		for k, v := range page.Content {
			doc[k] = v
		}
		doc["id"] = page.ID
		response = append(response, doc)
	}

	c.JSON(http.StatusOK, response)
}

// UploadImage handles POST /api/admin/upload-image.
func (h *AdminHandler) UploadImage(c *gin.Context) {
	var req dto.UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.AdminError{Error: "画像データが不正です"})
		return
	}

	img, err := h.facade.UploadImage(c.Request.Context(), req.FileName, req.ImageData, CurrentAdminEmail(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrMissingParameter) {
			c.JSON(http.StatusBadRequest, dto.AdminError{Error: "画像データが不正です"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.AdminError{Error: "画像のアップロードに失敗しました"})
		return
	}

	c.JSON(http.StatusOK, dto.UploadImageResponse{
		Success: true,
		ImageID: img.ID,
		URL:     "/api/admin/images/" + img.ID,
	})
}

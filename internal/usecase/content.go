package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/uubo/memberhub/internal/domain/errors"
	"github.com/uubo/memberhub/internal/domain/model"
	"github.com/uubo/memberhub/internal/domain/repository"
)

// ContentUseCase manages admin-editable site content.
type ContentUseCase struct {
	content repository.ContentRepository
}

// NewContentUseCase constructs ContentUseCase.
func NewContentUseCase(content repository.ContentRepository) *ContentUseCase {
	return &ContentUseCase{content: content}
}

// Settings returns the stored site settings, or the default document when
// nothing has been saved yet.
func (u *ContentUseCase) Settings(ctx context.Context) (model.Document, error) {
	doc, err := u.content.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return defaultSiteSettings(), nil
		}
		return nil, err
	}
	return doc, nil
}

// UpdateSettings merges the submitted document into the stored settings.
func (u *ContentUseCase) UpdateSettings(ctx context.Context, doc model.Document) error {
	if len(doc) == 0 {
		return domainErrors.ErrMissingParameter
	}
	return u.content.MergeSettings(ctx, doc)
}

// Page returns the content document of one page.
func (u *ContentUseCase) Page(ctx context.Context, id string) (model.Document, error) {
	return u.content.GetPage(ctx, id)
}

// SavePage merges content into a page, stamping who edited it and when.
func (u *ContentUseCase) SavePage(ctx context.Context, id string, content model.Document, editor string) error {
	if len(content) == 0 {
		return domainErrors.ErrMissingParameter
	}
	stamped := make(model.Document, len(content)+2)
	for k, v := range content {
		stamped[k] = v
	}
	stamped["updatedAt"] = time.Now().UTC().Format(time.RFC3339)
	stamped["updatedBy"] = editor
	return u.content.SavePage(ctx, id, stamped)
}

// Pages lists all stored pages.
func (u *ContentUseCase) Pages(ctx context.Context) ([]model.Page, error) {
	return u.content.ListPages(ctx)
}

// UploadImage stores a base64 image payload submitted from the admin UI.
func (u *ContentUseCase) UploadImage(ctx context.Context, fileName, data, uploader string) (*model.Image, error) {
	if fileName == "" || data == "" {
		return nil, domainErrors.ErrMissingParameter
	}
	img := model.Image{
		ID:         uuid.NewString(),
		FileName:   fileName,
		Data:       data,
		UploadedBy: uploader,
	}
	return u.content.AddImage(ctx, img)
}

func defaultSiteSettings() model.Document {
	return model.Document{
		"hero": model.Document{
			"images": []any{
				"/images/hero1.jpg",
				"/images/hero2.jpg",
				"/images/hero3.jpg",
			},
		},
		"sections": model.Document{
			"news": model.Document{
				"title": "お知らせ",
				"items": []any{},
			},
			"products": model.Document{
				"title": "商品・サービス",
				"items": []any{},
			},
		},
		"links": model.Document{
			"onlineShop": "https://ccconekuto.com/",
			"recycle":    "#",
			"buyback":    "#",
		},
	}
}

package repository

import (
	"context"

	"github.com/uubo/memberhub/internal/domain/model"
)

// ContentRepository persists the schemaless admin-managed documents.
type ContentRepository interface {
	GetSettings(ctx context.Context) (model.Document, error)
	// MergeSettings merges top-level keys into the stored settings
	// document, creating it when absent.
	MergeSettings(ctx context.Context, doc model.Document) error
	GetPage(ctx context.Context, id string) (model.Document, error)
	SavePage(ctx context.Context, id string, content model.Document) error
	ListPages(ctx context.Context) ([]model.Page, error)
	AddImage(ctx context.Context, img model.Image) (*model.Image, error)
}

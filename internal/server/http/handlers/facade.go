package handlers

import (
	"context"

	"github.com/uubo/memberhub/internal/domain/model"
)

// AccountFacade describes member account capabilities required by handlers.
type AccountFacade interface {
	Register(ctx context.Context, email, password, fullName string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (string, error)
	MemberByID(ctx context.Context, id string) (*model.Member, error)
	UpdateProfile(ctx context.Context, id string, patch model.ProfilePatch) error
}

// CustomerFacade exposes the POS-facing member lookups.
type CustomerFacade interface {
	SearchCustomers(ctx context.Context, query string) ([]model.CustomerSummary, error)
	CustomerDetail(ctx context.Context, customerCode string) (*model.CustomerDetail, error)
}

// SyncFacade records POS webhook deliveries.
type SyncFacade interface {
	RecordPointUpdate(ctx context.Context, requestID, status string, successCount, errorCount int64) (*model.SyncLogEntry, error)
}

// ContentFacade provides the admin content operations.
type ContentFacade interface {
	SiteSettings(ctx context.Context) (model.Document, error)
	UpdateSiteSettings(ctx context.Context, doc model.Document) error
	Page(ctx context.Context, id string) (model.Document, error)
	SavePage(ctx context.Context, id string, content model.Document, editor string) error
	Pages(ctx context.Context) ([]model.Page, error)
	UploadImage(ctx context.Context, fileName, data, uploader string) (*model.Image, error)
}

// MembershipFacade aggregates the full set of operations used across handlers.
type MembershipFacade interface {
	AccountFacade
	CustomerFacade
	SyncFacade
	ContentFacade
}

package test

import (
	"context"

	"github.com/uubo/memberhub/internal/domain/model"
)

// AccountFacadeStub implements handlers.AccountFacade with pluggable funcs.
type AccountFacadeStub struct {
	RegisterFn      func(ctx context.Context, email, password, fullName string) (string, error)
	AuthenticateFn  func(ctx context.Context, email, password string) (string, error)
	ParseTokenFn    func(token string) (string, error)
	MemberByIDFn    func(ctx context.Context, id string) (*model.Member, error)
	UpdateProfileFn func(ctx context.Context, id string, patch model.ProfilePatch) error
}

func (s *AccountFacadeStub) Register(ctx context.Context, email, password, fullName string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, fullName)
	}
	return "", nil
}

func (s *AccountFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "", nil
}

func (s *AccountFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return "", nil
}

func (s *AccountFacadeStub) MemberByID(ctx context.Context, id string) (*model.Member, error) {
	if s.MemberByIDFn != nil {
		return s.MemberByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *AccountFacadeStub) UpdateProfile(ctx context.Context, id string, patch model.ProfilePatch) error {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, id, patch)
	}
	return nil
}

// CustomerFacadeStub implements handlers.CustomerFacade.
type CustomerFacadeStub struct {
	SearchCustomersFn func(ctx context.Context, query string) ([]model.CustomerSummary, error)
	CustomerDetailFn  func(ctx context.Context, customerCode string) (*model.CustomerDetail, error)
}

func (s *CustomerFacadeStub) SearchCustomers(ctx context.Context, query string) ([]model.CustomerSummary, error) {
	if s.SearchCustomersFn != nil {
		return s.SearchCustomersFn(ctx, query)
	}
	return []model.CustomerSummary{}, nil
}

func (s *CustomerFacadeStub) CustomerDetail(ctx context.Context, customerCode string) (*model.CustomerDetail, error) {
	if s.CustomerDetailFn != nil {
		return s.CustomerDetailFn(ctx, customerCode)
	}
	return nil, nil
}

// SyncFacadeStub implements handlers.SyncFacade.
type SyncFacadeStub struct {
	RecordPointUpdateFn func(ctx context.Context, requestID, status string, successCount, errorCount int64) (*model.SyncLogEntry, error)
}

func (s *SyncFacadeStub) RecordPointUpdate(ctx context.Context, requestID, status string, successCount, errorCount int64) (*model.SyncLogEntry, error) {
	if s.RecordPointUpdateFn != nil {
		return s.RecordPointUpdateFn(ctx, requestID, status, successCount, errorCount)
	}
	return &model.SyncLogEntry{}, nil
}

// ContentFacadeStub implements handlers.ContentFacade.
type ContentFacadeStub struct {
	SiteSettingsFn       func(ctx context.Context) (model.Document, error)
	UpdateSiteSettingsFn func(ctx context.Context, doc model.Document) error
	PageFn               func(ctx context.Context, id string) (model.Document, error)
	SavePageFn           func(ctx context.Context, id string, content model.Document, editor string) error
	PagesFn              func(ctx context.Context) ([]model.Page, error)
	UploadImageFn        func(ctx context.Context, fileName, data, uploader string) (*model.Image, error)
}

func (s *ContentFacadeStub) SiteSettings(ctx context.Context) (model.Document, error) {
	if s.SiteSettingsFn != nil {
		return s.SiteSettingsFn(ctx)
	}
	return model.Document{}, nil
}

func (s *ContentFacadeStub) UpdateSiteSettings(ctx context.Context, doc model.Document) error {
	if s.UpdateSiteSettingsFn != nil {
		return s.UpdateSiteSettingsFn(ctx, doc)
	}
	return nil
}

func (s *ContentFacadeStub) Page(ctx context.Context, id string) (model.Document, error) {
	if s.PageFn != nil {
		return s.PageFn(ctx, id)
	}
	return model.Document{}, nil
}

func (s *ContentFacadeStub) SavePage(ctx context.Context, id string, content model.Document, editor string) error {
	if s.SavePageFn != nil {
		return s.SavePageFn(ctx, id, content, editor)
	}
	return nil
}

func (s *ContentFacadeStub) Pages(ctx context.Context) ([]model.Page, error) {
	if s.PagesFn != nil {
		return s.PagesFn(ctx)
	}
	return nil, nil
}

func (s *ContentFacadeStub) UploadImage(ctx context.Context, fileName, data, uploader string) (*model.Image, error) {
	if s.UploadImageFn != nil {
		return s.UploadImageFn(ctx, fileName, data, uploader)
	}
	return &model.Image{}, nil
}

// MembershipFacadeStub aggregates the facade stubs into the full surface
// the router consumes.
type MembershipFacadeStub struct {
	AccountFacadeStub
	CustomerFacadeStub
	SyncFacadeStub
	ContentFacadeStub
}

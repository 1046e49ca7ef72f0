package app

import (
	"context"

	"github.com/uubo/memberhub/internal/domain/model"
	"github.com/uubo/memberhub/internal/usecase"
)

// MembershipFacade aggregates the application's use cases behind one
// surface consumed by the HTTP layer.
type MembershipFacade struct {
	accounts  *usecase.AccountUseCase
	customers *usecase.CustomerUseCase
	syncs     *usecase.SyncUseCase
	content   *usecase.ContentUseCase
}

func NewMembershipFacade(accounts *usecase.AccountUseCase, customers *usecase.CustomerUseCase, syncs *usecase.SyncUseCase, content *usecase.ContentUseCase) *MembershipFacade {
	return &MembershipFacade{accounts: accounts, customers: customers, syncs: syncs, content: content}
}

func (f *MembershipFacade) Register(ctx context.Context, email, password, fullName string) (string, error) {
	_, token, err := f.accounts.Register(ctx, email, password, fullName)
	return token, err
}

func (f *MembershipFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.accounts.Authenticate(ctx, email, password)
	return token, err
}

func (f *MembershipFacade) ParseToken(token string) (string, error) {
	return f.accounts.ParseToken(token)
}

func (f *MembershipFacade) MemberByID(ctx context.Context, id string) (*model.Member, error) {
	return f.accounts.GetByID(ctx, id)
}

func (f *MembershipFacade) UpdateProfile(ctx context.Context, id string, patch model.ProfilePatch) error {
	return f.accounts.UpdateProfile(ctx, id, patch)
}

func (f *MembershipFacade) SearchCustomers(ctx context.Context, query string) ([]model.CustomerSummary, error) {
	return f.customers.Search(ctx, query)
}

func (f *MembershipFacade) CustomerDetail(ctx context.Context, customerCode string) (*model.CustomerDetail, error) {
	return f.customers.Detail(ctx, customerCode)
}

func (f *MembershipFacade) RecordPointUpdate(ctx context.Context, requestID, status string, successCount, errorCount int64) (*model.SyncLogEntry, error) {
	return f.syncs.RecordPointUpdate(ctx, requestID, status, successCount, errorCount)
}

func (f *MembershipFacade) SiteSettings(ctx context.Context) (model.Document, error) {
	return f.content.Settings(ctx)
}

func (f *MembershipFacade) UpdateSiteSettings(ctx context.Context, doc model.Document) error {
	return f.content.UpdateSettings(ctx, doc)
}

func (f *MembershipFacade) Page(ctx context.Context, id string) (model.Document, error) {
	return f.content.Page(ctx, id)
}

func (f *MembershipFacade) SavePage(ctx context.Context, id string, content model.Document, editor string) error {
	return f.content.SavePage(ctx, id, content, editor)
}

func (f *MembershipFacade) Pages(ctx context.Context) ([]model.Page, error) {
	return f.content.Pages(ctx)
}

func (f *MembershipFacade) UploadImage(ctx context.Context, fileName, data, uploader string) (*model.Image, error) {
	return f.content.UploadImage(ctx, fileName, data, uploader)
}

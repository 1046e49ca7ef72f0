package test

import (
	"context"
	"time"

	domainErrors "github.com/uubo/memberhub/internal/domain/errors"
	"github.com/uubo/memberhub/internal/domain/model"
)

// MemberRepositoryStub stores members in-memory for tests. Iteration
// order for scans is insertion order, which keeps "first match" fixtures
// deterministic.
type MemberRepositoryStub struct {
	Members []*model.Member
	Err     error

	MergeCalls []MergeCall
}

// MergeCall records one MergeProfile invocation.
type MergeCall struct {
	ID    string
	Patch model.ProfilePatch
}

// NewMemberRepositoryStub constructs an empty stub repository.
func NewMemberRepositoryStub() *MemberRepositoryStub {
	return &MemberRepositoryStub{}
}

// Seed appends members to the stub store.
func (s *MemberRepositoryStub) Seed(members ...*model.Member) *MemberRepositoryStub {
	s.Members = append(s.Members, members...)
	return s
}

// Create registers a member unless the email already exists.
func (s *MemberRepositoryStub) Create(ctx context.Context, member *model.Member) (*model.Member, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Members {
		if existing.Email == member.Email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now()
	}
	s.Members = append(s.Members, member)
	return member, nil
}

// GetByID fetches a member by document id or returns not found.
func (s *MemberRepositoryStub) GetByID(ctx context.Context, id string) (*model.Member, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, m := range s.Members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByEmail fetches a member by email or returns not found.
func (s *MemberRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, m := range s.Members {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// FindByCustomerCode returns the first member carrying the code.
func (s *MemberRepositoryStub) FindByCustomerCode(ctx context.Context, code string) (*model.Member, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, m := range s.Members {
		if m.CustomerCode != nil && *m.CustomerCode == code {
			return m, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ScanAll returns up to limit members in insertion order.
func (s *MemberRepositoryStub) ScanAll(ctx context.Context, limit int) ([]model.Member, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.Member, 0, limit)
	for _, m := range s.Members {
		if len(result) == limit {
			break
		}
		result = append(result, *m)
	}
	return result, nil
}

// MergeProfile records the patch and applies it to the stored member.
func (s *MemberRepositoryStub) MergeProfile(ctx context.Context, id string, patch model.ProfilePatch) error {
	if s.Err != nil {
		return s.Err
	}
	s.MergeCalls = append(s.MergeCalls, MergeCall{ID: id, Patch: patch})
	for _, m := range s.Members {
		if m.ID == id {
			applyPatch(m, patch)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func applyPatch(m *model.Member, patch model.ProfilePatch) {
	if patch.FullName != nil {
		m.FullName = patch.FullName
	}
	if patch.LastName != nil {
		m.LastName = patch.LastName
	}
	if patch.FirstName != nil {
		m.FirstName = patch.FirstName
	}
	if patch.LastKana != nil {
		m.LastKana = patch.LastKana
	}
	if patch.FirstKana != nil {
		m.FirstKana = patch.FirstKana
	}
	if patch.PostCode != nil {
		m.PostCode = patch.PostCode
	}
	if patch.Address != nil {
		m.Address = patch.Address
	}
	if patch.PhoneNumber != nil {
		m.PhoneNumber = patch.PhoneNumber
	}
	if patch.MobileNumber != nil {
		m.MobileNumber = patch.MobileNumber
	}
	if patch.FaxNumber != nil {
		m.FaxNumber = patch.FaxNumber
	}
}

// SyncLogRepositoryStub collects appended entries for tests.
type SyncLogRepositoryStub struct {
	AppendFn func(context.Context, model.SyncLogEntry) (*model.SyncLogEntry, error)
	Entries  []model.SyncLogEntry
}

// Append stores the entry and assigns sequential ids.
func (s *SyncLogRepositoryStub) Append(ctx context.Context, entry model.SyncLogEntry) (*model.SyncLogEntry, error) {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, entry)
	}
	entry.ID = int64(len(s.Entries) + 1)
	entry.CreatedAt = time.Now()
	s.Entries = append(s.Entries, entry)
	return &entry, nil
}

// ContentRepositoryStub keeps documents in maps for tests.
type ContentRepositoryStub struct {
	Settings model.Document
	PageDocs map[string]model.Document
	Images   []model.Image
	Err      error
}

// NewContentRepositoryStub constructs stub with initialized maps.
func NewContentRepositoryStub() *ContentRepositoryStub {
	return &ContentRepositoryStub{PageDocs: make(map[string]model.Document)}
}

// GetSettings returns stored settings or not found.
func (s *ContentRepositoryStub) GetSettings(ctx context.Context) (model.Document, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Settings == nil {
		return nil, domainErrors.ErrNotFound
	}
	return s.Settings, nil
}

// MergeSettings merges top-level keys into the stored settings.
func (s *ContentRepositoryStub) MergeSettings(ctx context.Context, doc model.Document) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Settings == nil {
		s.Settings = make(model.Document)
	}
	for k, v := range doc {
		s.Settings[k] = v
	}
	return nil
}

// GetPage returns a page document or not found.
func (s *ContentRepositoryStub) GetPage(ctx context.Context, id string) (model.Document, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if doc, ok := s.PageDocs[id]; ok {
		return doc, nil
	}
	return nil, domainErrors.ErrNotFound
}

// SavePage merges content into the stored page.
func (s *ContentRepositoryStub) SavePage(ctx context.Context, id string, content model.Document) error {
	if s.Err != nil {
		return s.Err
	}
	if s.PageDocs == nil {
		s.PageDocs = make(map[string]model.Document)
	}
	doc, ok := s.PageDocs[id]
	if !ok {
		doc = make(model.Document)
	}
	for k, v := range content {
		doc[k] = v
	}
	s.PageDocs[id] = doc
	return nil
}

// ListPages returns stored pages.
func (s *ContentRepositoryStub) ListPages(ctx context.Context) ([]model.Page, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Page
	for id, doc := range s.PageDocs {
		result = append(result, model.Page{ID: id, Content: doc})
	}
	return result, nil
}

// AddImage stores the image record.
func (s *ContentRepositoryStub) AddImage(ctx context.Context, img model.Image) (*model.Image, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	img.UploadedAt = time.Now()
	s.Images = append(s.Images, img)
	return &img, nil
}

package dto

import "github.com/uubo/memberhub/internal/domain/model"

// ProfileResponse exposes the member-visible slice of a record.
type ProfileResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	CustomerCode string  `json:"customerCode"`
	FullName     *string `json:"fullName"`
	LastName     *string `json:"lastName"`
	FirstName    *string `json:"firstName"`
	LastKana     *string `json:"lastKana"`
	FirstKana    *string `json:"firstKana"`
	Rank         *string `json:"rank"`
	Point        int64   `json:"point"`
	Mile         int64   `json:"mile"`
	EntryDate    *string `json:"entryDate"`
	PostCode     *string `json:"postCode"`
	Address      *string `json:"address"`
	PhoneNumber  *string `json:"phoneNumber"`
	MobileNumber *string `json:"mobileNumber"`
	FaxNumber    *string `json:"faxNumber"`
}

// NewProfileResponse projects a member into the profile shape.
func NewProfileResponse(m *model.Member) ProfileResponse {
	detail := m.ToDetail()
	return ProfileResponse{
		ID:           m.ID,
		Email:        m.Email,
		CustomerCode: m.ResolvedCustomerCode(),
		FullName:     m.FullName,
		LastName:     m.LastName,
		FirstName:    m.FirstName,
		LastKana:     m.LastKana,
		FirstKana:    m.FirstKana,
		Rank:         m.Rank,
		Point:        detail.Point,
		Mile:         detail.Mile,
		EntryDate:    m.EntryDate,
		PostCode:     m.PostCode,
		Address:      m.Address,
		PhoneNumber:  m.PhoneNumber,
		MobileNumber: m.MobileNumber,
		FaxNumber:    m.FaxNumber,
	}
}

// ProfileUpdateRequest carries a partial profile edit; nil fields stay
// unchanged.
type ProfileUpdateRequest struct {
	FullName     *string `json:"fullName"`
	LastName     *string `json:"lastName"`
	FirstName    *string `json:"firstName"`
	LastKana     *string `json:"lastKana"`
	FirstKana    *string `json:"firstKana"`
	PostCode     *string `json:"postCode"`
	Address      *string `json:"address"`
	PhoneNumber  *string `json:"phoneNumber"`
	MobileNumber *string `json:"mobileNumber"`
	FaxNumber    *string `json:"faxNumber"`
}

// ToPatch converts the request into a domain profile patch.
func (r ProfileUpdateRequest) ToPatch() model.ProfilePatch {
	return model.ProfilePatch{
		FullName:     r.FullName,
		LastName:     r.LastName,
		FirstName:    r.FirstName,
		LastKana:     r.LastKana,
		FirstKana:    r.FirstKana,
		PostCode:     r.PostCode,
		Address:      r.Address,
		PhoneNumber:  r.PhoneNumber,
		MobileNumber: r.MobileNumber,
		FaxNumber:    r.FaxNumber,
	}
}

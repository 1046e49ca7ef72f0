package model

import (
	"strconv"
	"time"
)

// Member is one membership record. The store the profile pages write is
// effectively schemaless, so everything the registration form does not
// collect is optional and modelled as a pointer.
type Member struct {
	ID           string
	Email        string
	PasswordHash string

	CustomerID   *int64
	CustomerCode *string

	FullName  *string
	LastName  *string
	FirstName *string
	LastKana  *string
	FirstKana *string

	Status    *string
	Rank      *string
	StaffRank *string
	Sex       *string
	BirthDate *string

	Point                *int64
	PointExpireDate      *string
	Mile                 *int64
	PointGivingUnitPrice *int64
	PointGivingUnit      *string

	LastComeDateTime *string
	EntryDate        *string
	LeaveDate        *string

	PostCode     *string
	Address      *string
	PhoneNumber  *string
	MobileNumber *string
	FaxNumber    *string

	Note       *string
	Note2      *string
	PinCode    *string
	CustomerNo *string

	CreatedAt time.Time
}

// ProfilePatch carries the member-editable subset of profile fields.
// Nil fields are left untouched by the merge.
type ProfilePatch struct {
	FullName     *string
	LastName     *string
	FirstName    *string
	LastKana     *string
	FirstKana    *string
	PostCode     *string
	Address      *string
	PhoneNumber  *string
	MobileNumber *string
	FaxNumber    *string
}

// CustomerSummary is the row shape returned by the POS customer search.
type CustomerSummary struct {
	CustomerID   int64  `json:"customerId"`
	CustomerCode string `json:"customerCode"`
	LastName     string `json:"lastName"`
	FirstName    string `json:"firstName"`
	Status       string `json:"status"`
}

// CustomerDetail is the full POS-facing projection of a member record.
// Every key is always present on the wire: optional values serialize as
// null, the rest fall back to the documented defaults.
type CustomerDetail struct {
	CustomerID   int64  `json:"customerId"`
	CustomerCode string `json:"customerCode"`
	Status       string `json:"status"`
	LastName     string `json:"lastName"`
	FirstName    string `json:"firstName"`

	CustomerNo *string `json:"customerNo"`
	PinCode    *string `json:"pinCode"`

	Rank      *string `json:"rank"`
	StaffRank *string `json:"staffRank"`

	LastKana  *string `json:"lastKana"`
	FirstKana *string `json:"firstKana"`

	Sex       string  `json:"sex"`
	BirthDate *string `json:"birthDate"`

	Point           int64   `json:"point"`
	PointExpireDate *string `json:"pointExpireDate"`
	Mile            int64   `json:"mile"`

	PointGivingUnitPrice *int64  `json:"pointGivingUnitPrice"`
	PointGivingUnit      *string `json:"pointGivingUnit"`

	LastComeDateTime *string `json:"lastComeDateTime"`
	EntryDate        *string `json:"entryDate"`
	LeaveDate        *string `json:"leaveDate"`

	PostCode     *string `json:"postCode"`
	Address      *string `json:"address"`
	PhoneNumber  *string `json:"phoneNumber"`
	MobileNumber *string `json:"mobileNumber"`
	FaxNumber    *string `json:"faxNumber"`
	MailAddress  *string `json:"mailAddress"`

	Note  *string `json:"note"`
	Note2 *string `json:"note2"`
}

// ToSummary projects a member into the search result row.
func (m *Member) ToSummary() CustomerSummary {
	return CustomerSummary{
		CustomerID:   m.ResolvedCustomerID(),
		CustomerCode: m.ResolvedCustomerCode(),
		LastName:     stringOrEmpty(m.LastName),
		FirstName:    stringOrEmpty(m.FirstName),
		Status:       stringOr(m.Status, "0"),
	}
}

// ToDetail projects a member into the full POS detail schema.
func (m *Member) ToDetail() CustomerDetail {
	var mail *string
	if m.Email != "" {
		email := m.Email
		mail = &email
	}
	return CustomerDetail{
		CustomerID:   m.ResolvedCustomerID(),
		CustomerCode: m.ResolvedCustomerCode(),
		Status:       stringOr(m.Status, "0"),
		LastName:     stringOrEmpty(m.LastName),
		FirstName:    stringOrEmpty(m.FirstName),

		CustomerNo: m.CustomerNo,
		PinCode:    m.PinCode,

		Rank:      m.Rank,
		StaffRank: m.StaffRank,

		LastKana:  m.LastKana,
		FirstKana: m.FirstKana,

		Sex:       stringOr(m.Sex, "0"),
		BirthDate: m.BirthDate,

		Point:           intOrZero(m.Point),
		PointExpireDate: m.PointExpireDate,
		Mile:            intOrZero(m.Mile),

		PointGivingUnitPrice: m.PointGivingUnitPrice,
		PointGivingUnit:      m.PointGivingUnit,

		LastComeDateTime: m.LastComeDateTime,
		EntryDate:        m.EntryDate,
		LeaveDate:        m.LeaveDate,

		PostCode:     m.PostCode,
		Address:      m.Address,
		PhoneNumber:  m.PhoneNumber,
		MobileNumber: m.MobileNumber,
		FaxNumber:    m.FaxNumber,
		MailAddress:  mail,

		Note:  m.Note,
		Note2: m.Note2,
	}
}

// ResolvedCustomerCode returns the external member code, falling back to
// the document id when none is stored.
func (m *Member) ResolvedCustomerCode() string {
	if m.CustomerCode != nil && *m.CustomerCode != "" {
		return *m.CustomerCode
	}
	return m.ID
}

// ResolvedCustomerID returns the numeric POS customer id. Records created
// before the POS integration carry no explicit id; for those the leading
// digit run of the first 10 characters of the document id is parsed
// instead. Non-numeric prefixes resolve to 0. The value is meaningless
// but stable, which is all the POS contract requires.
func (m *Member) ResolvedCustomerID() int64 {
	if m.CustomerID != nil {
		return *m.CustomerID
	}
	prefix := m.ID
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	end := 0
	for end < len(prefix) && prefix[end] >= '0' && prefix[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	id, err := strconv.ParseInt(prefix[:end], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func stringOrEmpty(v *string) string {
	return stringOr(v, "")
}

func stringOr(v *string, def string) string {
	if v != nil && *v != "" {
		return *v
	}
	return def
}

func intOrZero(v *int64) int64 {
	if v != nil {
		return *v
	}
	return 0
}

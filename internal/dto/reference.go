package dto

import (
	"time"

	"tracker/internal/entities"
)

type ReferenceItem struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	DepartmentID *int64    `json:"departmentId,omitempty"`
	Category     *string   `json:"category,omitempty"`
	IsDefault    *bool     `json:"isDefault,omitempty"`
	VendorCode   *string   `json:"vendorCode,omitempty"`
	ProviderType *string   `json:"providerType,omitempty"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Remarks      *string   `json:"remarks,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromReferenceItem(i entities.ReferenceItem) ReferenceItem {
	out := ReferenceItem{
		ID:           i.ID,
		Name:         i.Name,
		Description:  i.Description,
		DepartmentID: i.DepartmentID,
		Category:     i.Category,
		IsDefault:    i.IsDefault,
		VendorCode:   i.VendorCode,
		Email:        i.Email,
		Phone:        i.Phone,
		Remarks:      i.Remarks,
		CreatedAt:    i.CreatedAt,
	}
	if i.ProviderType != nil {
		t := i.ProviderType.String()
		out.ProviderType = &t
	}
	return out
}

// ReferenceModify тело POST /admin/reference/{kind}.
type ReferenceModify struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	DepartmentID *int64  `json:"departmentId,omitempty"`
	Category     *string `json:"category,omitempty"`
	IsDefault    *bool   `json:"isDefault,omitempty"`
	VendorCode   *string `json:"vendorCode,omitempty"`
	ProviderType *string `json:"providerType,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Remarks      *string `json:"remarks,omitempty"`
}

func (m ReferenceModify) ToEntity(kind entities.ReferenceKind) entities.ReferenceModify {
	out := entities.ReferenceModify{
		Kind:         kind,
		Name:         m.Name,
		Description:  m.Description,
		DepartmentID: m.DepartmentID,
		Category:     m.Category,
		IsDefault:    m.IsDefault,
		VendorCode:   m.VendorCode,
		Email:        m.Email,
		Phone:        m.Phone,
		Remarks:      m.Remarks,
	}
	if m.ProviderType != nil {
		t := entities.ProviderType(*m.ProviderType)
		out.ProviderType = &t
	}
	return out
}

type UserProfile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	AccessLevel string `json:"accessLevel"`
}

func FromUserProfile(u entities.UserProfile) UserProfile {
	return UserProfile{
		ID:          u.ID,
		Username:    u.Username,
		FullName:    u.FullName,
		AccessLevel: string(u.AccessLevel),
	}
}

type SessionRequest struct {
	Key string `json:"key"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

package entities

import "time"

type ReferenceKind string

const (
	ReferenceCategories       ReferenceKind = "categories"
	ReferenceDepartments      ReferenceKind = "departments"
	ReferenceKPIs             ReferenceKind = "kpis"
	ReferenceStatuses         ReferenceKind = "statuses"
	ReferenceServiceProviders ReferenceKind = "service-providers"
)

func (k ReferenceKind) String() string {
	return string(k)
}

// ReferenceKinds справочники в порядке вкладок админки.
var ReferenceKinds = []ReferenceKind{
	ReferenceCategories,
	ReferenceDepartments,
	ReferenceKPIs,
	ReferenceStatuses,
	ReferenceServiceProviders,
}

type ProviderType string

const (
	ProviderTransporter ProviderType = "transporter"
	ProviderPartner     ProviderType = "partner"
)

func (t ProviderType) String() string {
	return string(t)
}

// ReferenceModify общая форма создания справочной записи; какие поля
// обязательны, зависит от ReferenceKind.
type ReferenceModify struct {
	Kind         ReferenceKind
	Name         *string
	Description  *string
	DepartmentID *int64
	Category     *string
	IsDefault    *bool
	VendorCode   *string
	ProviderType *ProviderType
	Email        *string
	Phone        *string
	Remarks      *string
}

// ReferenceFilter необязательные фильтры списка (KPI по отделу, статусы по категории,
// провайдеры по типу).
type ReferenceFilter struct {
	DepartmentID *int64
	Category     *string
	ProviderType *ProviderType
}

// ReferenceItem плоское представление любой справочной записи для списков.
type ReferenceItem struct {
	ID           int64
	Name         string
	Description  string
	DepartmentID *int64
	Category     *string
	IsDefault    *bool
	VendorCode   *string
	ProviderType *ProviderType
	Email        *string
	Phone        *string
	Remarks      *string
	CreatedAt    time.Time
}

type AccessLevel string

const (
	AccessUser  AccessLevel = "user"
	AccessAdmin AccessLevel = "admin"
)

type UserProfile struct {
	ID          string
	Username    string
	FullName    string
	AccessLevel AccessLevel
}

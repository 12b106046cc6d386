package reference

import (
	"time"

	"tracker/internal/entities"
)

// ReferenceDB объединение колонок всех справочников. Заполняются только
// поля, которые есть у таблицы конкретного справочника.
type ReferenceDB struct {
	ID           int64
	Name         string
	Description  string
	DepartmentID int64
	Category     string
	IsDefault    bool
	VendorCode   string
	ProviderType string
	Email        string
	Phone        string
	Remarks      string
	CreatedAt    time.Time
}

type schema struct {
	table   string
	columns []string
	fields  func(m *ReferenceDB) []interface{}
	order   string
}

var schemas = map[entities.ReferenceKind]schema{
	entities.ReferenceCategories: {
		table:   "categories",
		columns: []string{"name", "description"},
		fields: func(m *ReferenceDB) []interface{} {
			return []interface{}{&m.Name, &m.Description}
		},
		order: "name",
	},
	entities.ReferenceDepartments: {
		table:   "departments",
		columns: []string{"name", "description"},
		fields: func(m *ReferenceDB) []interface{} {
			return []interface{}{&m.Name, &m.Description}
		},
		order: "name",
	},
	entities.ReferenceKPIs: {
		table:   "kpis",
		columns: []string{"name", "department_id", "description"},
		fields: func(m *ReferenceDB) []interface{} {
			return []interface{}{&m.Name, &m.DepartmentID, &m.Description}
		},
		order: "name",
	},
	entities.ReferenceStatuses: {
		table:   "statuses",
		columns: []string{"name", "category", "description", "is_default"},
		fields: func(m *ReferenceDB) []interface{} {
			return []interface{}{&m.Name, &m.Category, &m.Description, &m.IsDefault}
		},
		order: "category, name",
	},
	entities.ReferenceServiceProviders: {
		table:   "service_providers",
		columns: []string{"name", "vendor_code", "type", "email", "phone", "remarks"},
		fields: func(m *ReferenceDB) []interface{} {
			return []interface{}{&m.Name, &m.VendorCode, &m.ProviderType, &m.Email, &m.Phone, &m.Remarks}
		},
		order: "name",
	},
}

func (s schema) selectColumns() []string {
	columns := make([]string, 0, len(s.columns)+2)
	columns = append(columns, "id")
	columns = append(columns, s.columns...)
	return append(columns, "created_at")
}

func (s schema) insertValues(m *ReferenceDB) []interface{} {
	targets := s.fields(m)
	values := make([]interface{}, len(targets))
	for i, target := range targets {
		switch v := target.(type) {
		case *string:
			values[i] = *v
		case *int64:
			values[i] = *v
		case *bool:
			values[i] = *v
		}
	}
	return values
}

func (s schema) scanTargets(m *ReferenceDB) []interface{} {
	targets := make([]interface{}, 0, len(s.columns)+2)
	targets = append(targets, &m.ID)
	targets = append(targets, s.fields(m)...)
	return append(targets, &m.CreatedAt)
}

type UserProfileDB struct {
	ID          string
	Username    string
	FullName    string
	AccessLevel string
}

var userColumns = []string{"id", "username", "full_name", "access_level"}

func (u *UserProfileDB) scanTargets() []interface{} {
	return []interface{}{&u.ID, &u.Username, &u.FullName, &u.AccessLevel}
}

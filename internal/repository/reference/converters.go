package reference

import (
	"github.com/AlekSi/pointer"
	"tracker/internal/entities"
)

func ToDomain(kind entities.ReferenceKind, m *ReferenceDB) *entities.ReferenceItem {
	if m == nil {
		return nil
	}

	item := &entities.ReferenceItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}

	switch kind {
	case entities.ReferenceKPIs:
		item.DepartmentID = pointer.ToInt64(m.DepartmentID)
	case entities.ReferenceStatuses:
		item.Category = pointer.ToString(m.Category)
		item.IsDefault = pointer.ToBool(m.IsDefault)
	case entities.ReferenceServiceProviders:
		item.VendorCode = pointer.ToString(m.VendorCode)
		item.ProviderType = pointer.To(entities.ProviderType(m.ProviderType))
		item.Email = pointer.ToString(m.Email)
		item.Phone = pointer.ToString(m.Phone)
		item.Remarks = pointer.ToString(m.Remarks)
	}
	return item
}

func FromDomain(m entities.ReferenceModify) *ReferenceDB {
	model := &ReferenceDB{
		Name:         pointer.GetString(m.Name),
		Description:  pointer.GetString(m.Description),
		DepartmentID: pointer.GetInt64(m.DepartmentID),
		Category:     pointer.GetString(m.Category),
		IsDefault:    pointer.GetBool(m.IsDefault),
		VendorCode:   pointer.GetString(m.VendorCode),
		Email:        pointer.GetString(m.Email),
		Phone:        pointer.GetString(m.Phone),
		Remarks:      pointer.GetString(m.Remarks),
	}
	if m.ProviderType != nil {
		model.ProviderType = m.ProviderType.String()
	}
	return model
}

func ToDomainList(kind entities.ReferenceKind, models []ReferenceDB) []entities.ReferenceItem {
	if len(models) == 0 {
		return []entities.ReferenceItem{}
	}

	result := make([]entities.ReferenceItem, len(models))
	for i := range models {
		result[i] = *ToDomain(kind, &models[i])
	}
	return result
}

func UserToDomain(u *UserProfileDB) entities.UserProfile {
	return entities.UserProfile{
		ID:          u.ID,
		Username:    u.Username,
		FullName:    u.FullName,
		AccessLevel: entities.AccessLevel(u.AccessLevel),
	}
}

package reference

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"tracker/internal/entities"
)

func knownKind(kind entities.ReferenceKind) bool {
	return slices.Contains(entities.ReferenceKinds, kind)
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func validateModify(m entities.ReferenceModify) error {
	if !knownKind(m.Kind) {
		return fmt.Errorf("%w: %q", ErrUnknownKind, m.Kind)
	}
	if !present(m.Name) {
		return fmt.Errorf("name: %w", ErrMissingRequiredFields)
	}

	switch m.Kind {
	case entities.ReferenceKPIs:
		if m.DepartmentID == nil || *m.DepartmentID <= 0 {
			return fmt.Errorf("department_id: %w", ErrMissingRequiredFields)
		}
	case entities.ReferenceStatuses:
		if !present(m.Category) {
			return fmt.Errorf("category: %w", ErrMissingRequiredFields)
		}
	case entities.ReferenceServiceProviders:
		if !present(m.VendorCode) {
			return fmt.Errorf("vendor_code: %w", ErrMissingRequiredFields)
		}
		if m.ProviderType == nil {
			return fmt.Errorf("type: %w", ErrMissingRequiredFields)
		}
		if *m.ProviderType != entities.ProviderTransporter && *m.ProviderType != entities.ProviderPartner {
			return fmt.Errorf("%w: %q", ErrInvalidProviderType, *m.ProviderType)
		}
		if present(m.Email) {
			if _, err := mail.ParseAddress(*m.Email); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidEmail, *m.Email)
			}
		}
	}
	return nil
}

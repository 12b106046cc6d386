package reference

import (
	"context"
	"fmt"
	"strings"

	"tracker/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) ListReference(
	ctx context.Context,
	kind entities.ReferenceKind,
	filter entities.ReferenceFilter,
) ([]entities.ReferenceItem, error) {
	if !knownKind(kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	items, err := s.repository.ListReference(ctx, kind, filter)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	return items, nil
}

// CreateReference доступно только администратору, проверка на уровне маршрута.
func (s *Service) CreateReference(ctx context.Context, modify entities.ReferenceModify) (*entities.ReferenceItem, error) {
	modify = trim(modify)
	if err := validateModify(modify); err != nil {
		return nil, err
	}

	item, err := s.repository.CreateReference(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", modify.Kind, err)
	}
	return item, nil
}

func trim(m entities.ReferenceModify) entities.ReferenceModify {
	for _, field := range []**string{&m.Name, &m.Description, &m.Category, &m.VendorCode, &m.Email, &m.Phone, &m.Remarks} {
		if *field != nil {
			v := strings.TrimSpace(**field)
			*field = &v
		}
	}
	return m
}

// ReferenceName имя записи справочника по идентификатору.
func (s *Service) ReferenceName(ctx context.Context, kind entities.ReferenceKind, id int64) (string, error) {
	if !knownKind(kind) {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	name, err := s.repository.ReferenceName(ctx, kind, id)
	if err != nil {
		return "", fmt.Errorf("get %s name: %w", kind, err)
	}
	return name, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]entities.UserProfile, error) {
	users, err := s.repository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Service) AssignableUsers(ctx context.Context) ([]entities.UserProfile, error) {
	users, err := s.repository.AssignableUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignable users: %w", err)
	}
	return users, nil
}

package ticket

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"tracker/internal/entities"
	"tracker/internal/eventlog"
	"tracker/internal/pkg/metrics"
	"tracker/internal/service/draft"
	"tracker/pkg/paging"
)

const NumberPrefix = "TKT-"

type Service struct {
	repository  Repository
	references  References
	attachments AttachmentStore
	txManager   TxManager
	now         func() time.Time
}

func New(
	repository Repository,
	references References,
	attachments AttachmentStore,
	txManager TxManager,
) *Service {
	return &Service{
		repository:  repository,
		references:  references,
		attachments: attachments,
		txManager:   txManager,
		now:         time.Now,
	}
}

func FormatTicketNumber(n int64) string {
	return fmt.Sprintf("%s%06d", NumberPrefix, n)
}

// Flow мастер создания тикета из трёх шагов.
func (s *Service) Flow() draft.Flow[entities.TicketForm] {
	return draft.Flow[entities.TicketForm]{
		Kind:     entities.DraftTicket,
		Steps:    Steps,
		Initial:  initialForm,
		Validate: ValidateStep,
		Submit: func(ctx context.Context, actor string, form entities.TicketForm) (draft.Receipt, error) {
			ticket, err := s.SubmitTicket(ctx, actor, form)
			if err != nil {
				return draft.Receipt{}, err
			}
			return draft.Receipt{
				Value:    ticket,
				Location: "/tickets/" + url.PathEscape(ticket.TicketNumber),
			}, nil
		},
	}
}

func initialForm() entities.TicketForm {
	return entities.TicketForm{
		BasicInfo: entities.TicketBasicInfo{Priority: entities.PriorityMedium},
	}
}

type resolvedNames struct {
	category, department, kpi, status string
}

// resolveNames имена категории, отдела, KPI и статуса запрашиваются параллельно.
func (s *Service) resolveNames(ctx context.Context, form entities.TicketForm) (resolvedNames, error) {
	lookups := []struct {
		kind entities.ReferenceKind
		raw  string
	}{
		{entities.ReferenceCategories, form.BasicInfo.CategoryID},
		{entities.ReferenceDepartments, form.BasicInfo.DepartmentID},
		{entities.ReferenceKPIs, form.BasicInfo.KPIID},
		{entities.ReferenceStatuses, form.Resolution.StatusID},
	}

	// все идентификаторы разбираются до первого запроса
	ids := make([]int64, len(lookups))
	for i, l := range lookups {
		id, err := strconv.ParseInt(strings.TrimSpace(l.raw), 10, 64)
		if err != nil {
			return resolvedNames{}, fmt.Errorf("%w: %s=%q", ErrInvalidReference, l.kind, l.raw)
		}
		ids[i] = id
	}

	names := make([]string, len(lookups))
	g, gctx := errgroup.WithContext(ctx)
	for i, l := range lookups {
		id := ids[i]
		g.Go(func() error {
			name, err := s.references.ReferenceName(gctx, l.kind, id)
			if err != nil {
				return fmt.Errorf("resolve %s %d: %w", l.kind, id, err)
			}
			names[i] = name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return resolvedNames{}, err
	}

	return resolvedNames{category: names[0], department: names[1], kpi: names[2], status: names[3]}, nil
}

// SubmitTicket создаёт первую версию тикета.
func (s *Service) SubmitTicket(ctx context.Context, actor string, form entities.TicketForm) (*entities.Ticket, error) {
	for step := StepBasicInfo; step <= Steps; step++ {
		if !ValidateStep(step, form) {
			return nil, fmt.Errorf("step %d: %w", step, ErrMissingRequiredFields)
		}
	}

	priority := form.BasicInfo.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}
	if !validPriority(priority) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, priority)
	}

	dueDate, err := time.Parse(time.DateOnly, strings.TrimSpace(form.BasicInfo.DueDate))
	if err != nil {
		return nil, fmt.Errorf("due date: %w", ErrInvalidDate)
	}
	incidentDate, err := time.Parse(time.DateOnly, strings.TrimSpace(form.BasicInfo.IncidentDate))
	if err != nil {
		return nil, fmt.Errorf("incident date: %w", ErrInvalidDate)
	}

	names, err := s.resolveNames(ctx, form)
	if err != nil {
		return nil, err
	}

	var created *entities.Ticket
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		next, err := s.repository.NextTicketNumber(ctx)
		if err != nil {
			return fmt.Errorf("get next ticket number: %w", err)
		}
		number := FormatTicketNumber(next)

		version, err := s.repository.NextTicketVersion(ctx, number)
		if err != nil {
			return fmt.Errorf("get next ticket version: %w", err)
		}

		created, err = s.repository.CreateTicket(ctx, entities.Ticket{
			TicketNumber:      number,
			Version:           version,
			CategoryName:      names.category,
			DepartmentName:    names.department,
			KPIName:           names.kpi,
			AssignedTo:        form.BasicInfo.AssignedTo,
			Title:             strings.TrimSpace(form.Details.Title),
			Description:       form.Details.Description,
			Priority:          priority,
			DueDate:           dueDate,
			IncidentDate:      incidentDate,
			Accountability:    form.Resolution.Accountability,
			StatusName:        names.status,
			Attachment:        form.Details.Attachment,
			CreatedBy:         actor,
			OriginalCreatedAt: s.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.DocumentsSubmitted.WithLabelValues(entities.DraftTicket.String()).Inc()
	return created, nil
}

// UploadAttachment кладёт файл в хранилище; ссылка попадает в тикет при отправке мастера.
func (s *Service) UploadAttachment(_ context.Context, actor, filename, contentType string, r io.Reader) (*entities.Attachment, error) {
	if !filled(actor, filename) {
		return nil, ErrMissingRequiredFields
	}

	path, size, err := s.attachments.Save(actor, filename, r)
	if err != nil {
		return nil, fmt.Errorf("save attachment: %w", err)
	}
	return &entities.Attachment{
		Path:        path,
		Name:        filename,
		ContentType: contentType,
		Size:        size,
	}, nil
}

// OpenAttachment вложение текущей версии тикета.
func (s *Service) OpenAttachment(ctx context.Context, number string) (io.ReadCloser, *entities.Attachment, error) {
	current, err := s.repository.GetCurrent(ctx, number)
	if err != nil {
		return nil, nil, fmt.Errorf("get ticket: %w", err)
	}
	if current.Attachment == nil || current.Attachment.Path == "" {
		return nil, nil, ErrAttachmentNotFound
	}

	file, err := s.attachments.Open(current.Attachment.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open attachment: %w", err)
	}
	return file, current.Attachment, nil
}

// UpdateTicket правка сохраняется новой версией, original_created_at не меняется.
func (s *Service) UpdateTicket(ctx context.Context, modify entities.TicketModify) (*entities.Ticket, error) {
	if !filled(modify.TicketNumber, modify.EditedBy) {
		return nil, ErrMissingRequiredFields
	}
	if modify.Priority != nil && !validPriority(*modify.Priority) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, *modify.Priority)
	}

	var updated *entities.Ticket
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetCurrent(ctx, modify.TicketNumber)
		if err != nil {
			return fmt.Errorf("get ticket: %w", err)
		}

		version, err := s.repository.NextTicketVersion(ctx, modify.TicketNumber)
		if err != nil {
			return fmt.Errorf("get next ticket version: %w", err)
		}

		next := apply(*current, modify)
		next.ID = 0
		next.Version = version
		next.CreatedBy = modify.EditedBy
		next.CreatedAt = time.Time{}

		updated, err = s.repository.CreateTicket(ctx, next)
		if err != nil {
			return fmt.Errorf("create ticket version: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func apply(t entities.Ticket, m entities.TicketModify) entities.Ticket {
	if m.AssignedTo != nil {
		t.AssignedTo = *m.AssignedTo
	}
	if m.Title != nil {
		t.Title = *m.Title
	}
	if m.Description != nil && *m.Description != "" {
		t.Description = *m.Description
	}
	if m.Priority != nil {
		t.Priority = *m.Priority
	}
	if m.DueDate != nil {
		t.DueDate = *m.DueDate
	}
	if m.Accountability != nil {
		t.Accountability = *m.Accountability
	}
	if m.StatusName != nil {
		t.StatusName = *m.StatusName
	}
	if m.Attachment != nil {
		t.Attachment = m.Attachment
	}
	return t
}

// ListTickets текущие версии тикетов пользователя (mine) или назначенных ему (incoming).
func (s *Service) ListTickets(
	ctx context.Context,
	filter entities.TicketFilter,
	page paging.Request,
) (paging.Page[entities.TicketView], error) {
	if filter.Scope != entities.TicketScopeMine && filter.Scope != entities.TicketScopeIncoming {
		return paging.Page[entities.TicketView]{}, fmt.Errorf("%w: %q", ErrInvalidScope, filter.Scope)
	}
	if !filled(filter.Actor) {
		return paging.Page[entities.TicketView]{}, ErrMissingRequiredFields
	}

	versions, err := s.repository.ListTicketVersions(ctx, filter)
	if err != nil {
		return paging.Page[entities.TicketView]{}, fmt.Errorf("list tickets: %w", err)
	}

	current := inScope(filter, versions, eventlog.ProjectLatest(versions))
	current = eventlog.Search(current, filter.Search, func(t entities.Ticket) []string {
		return []string{t.TicketNumber, t.Title, t.CategoryName, t.DepartmentName, t.KPIName}
	})

	now := s.now()
	views := make([]entities.TicketView, 0, len(current))
	for _, t := range current {
		if filter.Status != "" && !strings.EqualFold(t.StatusName, filter.Status) {
			continue
		}
		if filter.Priority != "" && t.Priority != filter.Priority {
			continue
		}
		views = append(views, entities.TicketView{Ticket: t, LeadTime: eventlog.LeadTime(t, now)})
	}
	return paging.Slice(views, page), nil
}

// PerformanceReport показатели исполнителей для администратора.
func (s *Service) PerformanceReport(ctx context.Context) (entities.PerformanceReport, error) {
	var (
		users    []entities.UserProfile
		versions []entities.Ticket
	)
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		users, err = s.references.AssignableUsers(ctx)
		if err != nil {
			return fmt.Errorf("assignable users: %w", err)
		}
		versions, err = s.repository.AllTicketVersions(ctx)
		if err != nil {
			return fmt.Errorf("ticket versions: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.PerformanceReport{}, err
	}

	return eventlog.Performance(users, versions, s.now()), nil
}

// inScope выборка репозитория шире нужной: тикет находится по любой
// версии. Входящие проверяются по исполнителю текущей версии, "мои" по
// автору первой версии, правки других пользователей автора не меняют.
func inScope(filter entities.TicketFilter, versions, current []entities.Ticket) []entities.Ticket {
	creators := make(map[string]entities.Ticket, len(current))
	for _, v := range versions {
		if first, ok := creators[v.TicketNumber]; !ok || v.Version < first.Version {
			creators[v.TicketNumber] = v
		}
	}

	res := current[:0:0]
	for _, t := range current {
		owner := t.AssignedTo
		if filter.Scope == entities.TicketScopeMine {
			owner = creators[t.TicketNumber].CreatedBy
		}
		if owner == filter.Actor {
			res = append(res, t)
		}
	}
	return res
}

// Details сначала проверяет доступность хранилища, чтобы клиент мог
// отличить недоступность базы от отсутствующего тикета.
func (s *Service) Details(ctx context.Context, number string) (*entities.TicketDetailsView, error) {
	if !filled(number) {
		return nil, ErrMissingRequiredFields
	}
	if err := s.repository.Ping(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var view entities.TicketDetailsView
	err := s.txManager.ReadOnly(ctx, func(ctx context.Context) error {
		versions, err := s.repository.Versions(ctx, number)
		if err != nil {
			return fmt.Errorf("get ticket versions: %w", err)
		}

		current, ok := eventlog.Log[entities.Ticket](versions).Current(number)
		if !ok {
			return ErrTicketNotFound
		}

		view = entities.TicketDetailsView{
			Current:  current,
			LeadTime: eventlog.LeadTime(current, s.now()),
			Versions: versions,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

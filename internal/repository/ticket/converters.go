package ticket

import (
	"github.com/AlekSi/pointer"
	"tracker/internal/entities"
)

func ToDomain(t *TicketDB) *entities.Ticket {
	if t == nil {
		return nil
	}

	ticket := &entities.Ticket{
		ID:                t.ID,
		TicketNumber:      t.TicketNumber,
		Version:           int(t.Version),
		CategoryName:      t.CategoryName,
		DepartmentName:    t.DepartmentName,
		KPIName:           t.KPIName,
		AssignedTo:        t.AssignedTo,
		Title:             t.Title,
		Description:       t.Description,
		Priority:          entities.TicketPriority(t.Priority),
		DueDate:           t.DueDate,
		IncidentDate:      t.IncidentDate,
		Accountability:    t.Accountability,
		StatusName:        t.StatusName,
		CreatedBy:         t.CreatedBy,
		OriginalCreatedAt: t.OriginalCreatedAt,
		CreatedAt:         t.CreatedAt,
	}

	if t.AttachmentPath != nil && *t.AttachmentPath != "" {
		ticket.Attachment = &entities.Attachment{
			Path:        *t.AttachmentPath,
			Name:        pointer.GetString(t.AttachmentName),
			ContentType: pointer.GetString(t.AttachmentType),
			Size:        pointer.GetInt64(t.AttachmentSize),
		}
	}
	return ticket
}

func FromDomain(t *entities.Ticket) *TicketDB {
	if t == nil {
		return nil
	}

	model := &TicketDB{
		ID:                t.ID,
		TicketNumber:      t.TicketNumber,
		Version:           int32(t.Version),
		CategoryName:      t.CategoryName,
		DepartmentName:    t.DepartmentName,
		KPIName:           t.KPIName,
		AssignedTo:        t.AssignedTo,
		Title:             t.Title,
		Description:       t.Description,
		Priority:          t.Priority.String(),
		DueDate:           t.DueDate,
		IncidentDate:      t.IncidentDate,
		Accountability:    t.Accountability,
		StatusName:        t.StatusName,
		CreatedBy:         t.CreatedBy,
		OriginalCreatedAt: t.OriginalCreatedAt,
		CreatedAt:         t.CreatedAt,
	}

	if a := t.Attachment; a != nil {
		model.AttachmentPath = pointer.ToString(a.Path)
		model.AttachmentName = pointer.ToString(a.Name)
		model.AttachmentType = pointer.ToString(a.ContentType)
		model.AttachmentSize = pointer.ToInt64(a.Size)
	}
	return model
}

func ToDomainList(models []TicketDB) []entities.Ticket {
	if len(models) == 0 {
		return []entities.Ticket{}
	}

	result := make([]entities.Ticket, len(models))
	for i := range models {
		result[i] = *ToDomain(&models[i])
	}
	return result
}

package ticket

import (
	"slices"
	"time"
)

type TicketDB struct {
	ID                int64
	TicketNumber      string
	Version           int32
	CategoryName      string
	DepartmentName    string
	KPIName           string
	AssignedTo        string
	Title             string
	Description       string
	Priority          string
	DueDate           time.Time
	IncidentDate      time.Time
	Accountability    string
	StatusName        string
	AttachmentPath    *string
	AttachmentName    *string
	AttachmentType    *string
	AttachmentSize    *int64
	CreatedBy         string
	OriginalCreatedAt time.Time
	CreatedAt         time.Time
}

var insertColumns = []string{
	"ticket_number",
	"version",
	"category_name",
	"department_name",
	"kpi_name",
	"assigned_to",
	"title",
	"description",
	"priority",
	"due_date",
	"incident_date",
	"accountability",
	"status_name",
	"attachment_path",
	"attachment_name",
	"attachment_type",
	"attachment_size",
	"created_by",
	"original_created_at",
}

var selectColumns = slices.Concat([]string{"id"}, insertColumns, []string{"created_at"})

func (t *TicketDB) insertValues() []interface{} {
	return []interface{}{
		t.TicketNumber,
		t.Version,
		t.CategoryName,
		t.DepartmentName,
		t.KPIName,
		t.AssignedTo,
		t.Title,
		t.Description,
		t.Priority,
		t.DueDate,
		t.IncidentDate,
		t.Accountability,
		t.StatusName,
		t.AttachmentPath,
		t.AttachmentName,
		t.AttachmentType,
		t.AttachmentSize,
		t.CreatedBy,
		t.OriginalCreatedAt,
	}
}

func (t *TicketDB) scanTargets() []interface{} {
	return []interface{}{
		&t.ID,
		&t.TicketNumber,
		&t.Version,
		&t.CategoryName,
		&t.DepartmentName,
		&t.KPIName,
		&t.AssignedTo,
		&t.Title,
		&t.Description,
		&t.Priority,
		&t.DueDate,
		&t.IncidentDate,
		&t.Accountability,
		&t.StatusName,
		&t.AttachmentPath,
		&t.AttachmentName,
		&t.AttachmentType,
		&t.AttachmentSize,
		&t.CreatedBy,
		&t.OriginalCreatedAt,
		&t.CreatedAt,
	}
}

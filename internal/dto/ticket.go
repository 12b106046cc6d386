package dto

import (
	"fmt"
	"math"
	"time"

	"tracker/internal/entities"
)

type Attachment struct {
	Path        string `json:"path"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

func FromAttachment(a *entities.Attachment) *Attachment {
	if a == nil {
		return nil
	}
	return &Attachment{
		Path:        a.Path,
		Name:        a.Name,
		ContentType: a.ContentType,
		Size:        a.Size,
	}
}

func (a *Attachment) ToEntity() *entities.Attachment {
	if a == nil {
		return nil
	}
	return &entities.Attachment{
		Path:        a.Path,
		Name:        a.Name,
		ContentType: a.ContentType,
		Size:        a.Size,
	}
}

type Ticket struct {
	ID                int64       `json:"id"`
	TicketNumber      string      `json:"ticketNumber"`
	Version           int         `json:"version"`
	CategoryName      string      `json:"categoryName"`
	DepartmentName    string      `json:"departmentName"`
	KPIName           string      `json:"kpiName"`
	AssignedTo        string      `json:"assignedTo"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	Priority          string      `json:"priority"`
	DueDate           string      `json:"dueDate"`
	IncidentDate      string      `json:"incidentDate"`
	Accountability    string      `json:"accountability"`
	StatusName        string      `json:"statusName"`
	Attachment        *Attachment `json:"attachment,omitempty"`
	CreatedBy         string      `json:"createdBy"`
	OriginalCreatedAt time.Time   `json:"originalCreatedAt"`
	CreatedAt         time.Time   `json:"createdAt"`
}

func FromTicket(t entities.Ticket) Ticket {
	return Ticket{
		ID:                t.ID,
		TicketNumber:      t.TicketNumber,
		Version:           t.Version,
		CategoryName:      t.CategoryName,
		DepartmentName:    t.DepartmentName,
		KPIName:           t.KPIName,
		AssignedTo:        t.AssignedTo,
		Title:             t.Title,
		Description:       t.Description,
		Priority:          t.Priority.String(),
		DueDate:           date(t.DueDate),
		IncidentDate:      date(t.IncidentDate),
		Accountability:    t.Accountability,
		StatusName:        t.StatusName,
		Attachment:        FromAttachment(t.Attachment),
		CreatedBy:         t.CreatedBy,
		OriginalCreatedAt: t.OriginalCreatedAt,
		CreatedAt:         t.CreatedAt,
	}
}

// LeadTime Display повторяет колонку списка: "-", "3" или "3 (Final)".
type LeadTime struct {
	Days    *int   `json:"days"`
	Final   bool   `json:"final"`
	Display string `json:"display"`
}

func FromLeadTime(l entities.LeadTime) LeadTime {
	out := LeadTime{Final: l.Final, Display: l.String()}
	if l.Valid {
		days := l.Days
		out.Days = &days
	}
	return out
}

type TicketView struct {
	Ticket
	LeadTime LeadTime `json:"leadTime"`
}

func FromTicketView(v entities.TicketView) TicketView {
	return TicketView{Ticket: FromTicket(v.Ticket), LeadTime: FromLeadTime(v.LeadTime)}
}

type TicketDetails struct {
	Current  Ticket   `json:"current"`
	LeadTime LeadTime `json:"leadTime"`
	Versions []Ticket `json:"versions"`
}

func FromTicketDetails(v *entities.TicketDetailsView) TicketDetails {
	return TicketDetails{
		Current:  FromTicket(v.Current),
		LeadTime: FromLeadTime(v.LeadTime),
		Versions: Map(v.Versions, FromTicket),
	}
}

// TicketModify тело PUT /tickets/{number}. Незаданные поля не меняются.
type TicketModify struct {
	AssignedTo     *string     `json:"assignedTo,omitempty"`
	Title          *string     `json:"title,omitempty"`
	Description    *string     `json:"description,omitempty"`
	Priority       *string     `json:"priority,omitempty"`
	DueDate        *string     `json:"dueDate,omitempty"`
	Accountability *string     `json:"accountability,omitempty"`
	StatusName     *string     `json:"statusName,omitempty"`
	Attachment     *Attachment `json:"attachment,omitempty"`
}

func (m TicketModify) ToEntity(number, actor string) (entities.TicketModify, error) {
	out := entities.TicketModify{
		TicketNumber:   number,
		AssignedTo:     m.AssignedTo,
		Title:          m.Title,
		Description:    m.Description,
		Accountability: m.Accountability,
		StatusName:     m.StatusName,
		Attachment:     m.Attachment.ToEntity(),
		EditedBy:       actor,
	}
	if m.Priority != nil {
		p := entities.TicketPriority(*m.Priority)
		out.Priority = &p
	}
	if m.DueDate != nil {
		d, err := time.Parse(time.DateOnly, *m.DueDate)
		if err != nil {
			return entities.TicketModify{}, fmt.Errorf("dueDate: %w", err)
		}
		out.DueDate = &d
	}
	return out, nil
}

type UserPerformance struct {
	UserID          string   `json:"userId"`
	FullName        string   `json:"fullName"`
	Assigned        int      `json:"assigned"`
	Accountable     int      `json:"accountable"`
	Resolved        int      `json:"resolved"`
	Reopened        int      `json:"reopened"`
	Overdue         int      `json:"overdue"`
	AvgLeadTimeDays *float64 `json:"avgLeadTimeDays"`
}

type PerformanceReport struct {
	TotalUsers   int               `json:"totalUsers"`
	TotalTickets int               `json:"totalTickets"`
	Resolved     int               `json:"resolved"`
	Overdue      int               `json:"overdue"`
	Users        []UserPerformance `json:"users"`
}

func FromPerformanceReport(r entities.PerformanceReport) PerformanceReport {
	return PerformanceReport{
		TotalUsers:   len(r.Users),
		TotalTickets: r.TotalTickets,
		Resolved:     r.Resolved,
		Overdue:      r.Overdue,
		Users: Map(r.Users, func(u entities.UserPerformance) UserPerformance {
			out := UserPerformance{
				UserID:      u.UserID,
				FullName:    u.FullName,
				Assigned:    u.Assigned,
				Accountable: u.Accountable,
				Resolved:    u.Resolved,
				Reopened:    u.Reopened,
				Overdue:     u.Overdue,
			}
			// один знак после запятой
			if u.AvgLeadTimeDays != nil {
				avg := math.Round(*u.AvgLeadTimeDays*10) / 10
				out.AvgLeadTimeDays = &avg
			}
			return out
		}),
	}
}

package entities

import (
	"strconv"
	"time"
)

type TicketPriority string

const (
	PriorityLow      TicketPriority = "low"
	PriorityMedium   TicketPriority = "medium"
	PriorityHigh     TicketPriority = "high"
	PriorityCritical TicketPriority = "critical"
)

func (p TicketPriority) String() string {
	return string(p)
}

type Ticket struct {
	ID                int64
	TicketNumber      string
	Version           int
	CategoryName      string
	DepartmentName    string
	KPIName           string
	AssignedTo        string
	Title             string
	Description       string
	Priority          TicketPriority
	DueDate           time.Time
	IncidentDate      time.Time
	Accountability    string
	StatusName        string
	Attachment        *Attachment
	CreatedBy         string
	OriginalCreatedAt time.Time
	CreatedAt         time.Time
}

type Attachment struct {
	Path        string `json:"path"`
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// TicketForm состояние мастера создания тикета.
type TicketForm struct {
	BasicInfo  TicketBasicInfo  `json:"basicInfo"`
	Details    TicketDetails    `json:"details"`
	Resolution TicketResolution `json:"attachments"`
}

type TicketBasicInfo struct {
	CategoryID   string         `json:"category_id"`
	DepartmentID string         `json:"department_id"`
	KPIID        string         `json:"kpi_id"`
	AssignedTo   string         `json:"assigned_to"`
	DueDate      string         `json:"due_date"`
	Priority     TicketPriority `json:"priority"`
	IncidentDate string         `json:"incident_date"`
}

type TicketDetails struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Attachment  *Attachment `json:"attachment"`
}

type TicketResolution struct {
	Accountability string `json:"accountability"`
	StatusID       string `json:"status"`
}

// TicketModify правка тикета, порождает новую версию.
type TicketModify struct {
	TicketNumber   string
	AssignedTo     *string
	Title          *string
	Description    *string
	Priority       *TicketPriority
	DueDate        *time.Time
	Accountability *string
	StatusName     *string
	Attachment     *Attachment
	EditedBy       string
}

type TicketScope string

const (
	TicketScopeMine     TicketScope = "mine"
	TicketScopeIncoming TicketScope = "incoming"
)

type TicketFilter struct {
	Scope    TicketScope
	Actor    string
	Status   string
	Priority TicketPriority
	Search   string
}

// LeadTime сколько дней тикет в работе. Final - тикет в конечном статусе.
type LeadTime struct {
	Days  int
	Final bool
	Valid bool
}

func (l LeadTime) String() string {
	if !l.Valid {
		return "-"
	}
	if l.Final {
		return strconv.Itoa(l.Days) + " (Final)"
	}
	return strconv.Itoa(l.Days)
}

type TicketView struct {
	Ticket   Ticket
	LeadTime LeadTime
}

type TicketDetailsView struct {
	Current  Ticket
	LeadTime LeadTime
	Versions []Ticket
}

func (t Ticket) StreamKey() string {
	return t.TicketNumber
}

func (t Ticket) Supersedes(other Ticket) bool {
	return t.Version > other.Version
}

// UserPerformance показатели пользователя по текущим версиям тикетов.
// AvgLeadTimeDays nil, если у пользователя нет тикетов.
type UserPerformance struct {
	UserID          string
	FullName        string
	Assigned        int
	Accountable     int
	Resolved        int
	Reopened        int
	Overdue         int
	AvgLeadTimeDays *float64
}

type PerformanceReport struct {
	Users        []UserPerformance
	TotalTickets int
	Resolved     int
	Overdue      int
}

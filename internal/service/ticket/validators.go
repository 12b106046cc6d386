package ticket

import (
	"strings"

	"tracker/internal/entities"
)

const (
	StepBasicInfo = iota + 1
	StepDetails
	StepResolution

	Steps = StepResolution
)

func filled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func ValidateStep(step int, form entities.TicketForm) bool {
	switch step {
	case StepBasicInfo:
		b := form.BasicInfo
		return filled(b.CategoryID, b.DepartmentID, b.KPIID, b.AssignedTo, b.DueDate, b.IncidentDate)
	case StepDetails:
		return filled(form.Details.Title, form.Details.Description)
	case StepResolution:
		return filled(form.Resolution.StatusID, form.Resolution.Accountability)
	default:
		return false
	}
}

func validPriority(p entities.TicketPriority) bool {
	switch p {
	case entities.PriorityLow, entities.PriorityMedium, entities.PriorityHigh, entities.PriorityCritical:
		return true
	default:
		return false
	}
}

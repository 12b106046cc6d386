package eventlog

import (
	"math"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"tracker/internal/entities"
)

const day = 24 * time.Hour

// StageDelay количество целых (с округлением вверх) дней между первым событием
// sc_approved и первым событием с текущим статусом отгрузки. 0, если
// какого-то из событий нет в истории.
func StageDelay(current entities.ShipmentUpdate, history Log[entities.ShipmentUpdate]) int {
	var start, reached *entities.ShipmentUpdate

	stream := history.Stream(current.StreamKey())
	for i := range stream {
		if start == nil && stream[i].Status == entities.ShipmentApproved {
			start = &stream[i]
		}
		if reached == nil && stream[i].Status == current.Status {
			reached = &stream[i]
		}
	}
	if start == nil || reached == nil {
		return 0
	}

	return ceilDays(reached.CreatedAt.Sub(start.CreatedAt))
}

// RunningTotal сумма total по различным PK отгрузки. Повторные строки
// статусов одной и той же записи не учитываются.
func RunningTotal(history Log[entities.ShipmentUpdate], serial string) float64 {
	seen := make(map[int64]struct{})
	var total float64

	for _, u := range history.Stream(serial) {
		if _, ok := seen[u.PK]; ok {
			continue
		}
		seen[u.PK] = struct{}{}
		total += u.Total
	}
	return total
}

// GroupByStatus группирует последние снимки по статусу в порядке жизненного
// цикла. Пустые группы не возвращаются.
func GroupByStatus(latest []entities.ShipmentUpdate, history Log[entities.ShipmentUpdate]) []entities.StatusGroup {
	byStatus := make(map[entities.ShipmentStatus][]entities.TruckSummary)
	for _, u := range latest {
		byStatus[u.Status] = append(byStatus[u.Status], entities.TruckSummary{
			Latest:     u,
			StageDelay: StageDelay(u, history),
			Total:      RunningTotal(history, u.SerialNumber),
		})
	}

	groups := make([]entities.StatusGroup, 0, len(byStatus))
	for _, status := range entities.ShipmentStatuses {
		trucks, ok := byStatus[status]
		if !ok {
			continue
		}
		groups = append(groups, entities.StatusGroup{Status: status, Trucks: trucks})
	}
	return groups
}

var finalStatusMarkers = []string{"closed", "rejected", "approved"}

// LeadTime для тикета в конечном статусе считает дни до смены статуса,
// для остальных - до now.
func LeadTime(t entities.Ticket, now time.Time) entities.LeadTime {
	created := t.OriginalCreatedAt
	if created.IsZero() {
		created = t.CreatedAt
	}
	if created.IsZero() {
		return entities.LeadTime{}
	}

	status := strings.ToLower(t.StatusName)
	for _, marker := range finalStatusMarkers {
		if strings.Contains(status, marker) {
			return entities.LeadTime{
				Days:  ceilDays(t.CreatedAt.Sub(created)),
				Final: true,
				Valid: true,
			}
		}
	}

	return entities.LeadTime{
		Days:  ceilDays(now.Sub(created)),
		Valid: true,
	}
}

func ceilDays(d time.Duration) int {
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(float64(d) / float64(day)))
}

// Performance показатели исполнителей по текущим версиям тикетов.
// Тикет засчитывается текущему исполнителю. Просрочен незакрытый тикет,
// срок которого закончился раньше дня now.
func Performance(users []entities.UserProfile, versions []entities.Ticket, now time.Time) entities.PerformanceReport {
	current := ProjectLatest(versions)
	today := now.UTC().Truncate(day)

	report := entities.PerformanceReport{
		Users: make([]entities.UserPerformance, 0, len(users)),
	}
	for _, u := range users {
		p := entities.UserPerformance{UserID: u.ID, FullName: u.FullName}

		var leadDays, leadCount int
		for _, t := range current {
			if t.Accountability == u.ID {
				p.Accountable++
			}
			if t.AssignedTo != u.ID {
				continue
			}
			p.Assigned++

			status := strings.ToLower(t.StatusName)
			closed := strings.Contains(status, "closed")
			switch {
			case closed:
				p.Resolved++
			case strings.Contains(status, "reopened"):
				p.Reopened++
			}
			if !closed && !t.DueDate.IsZero() && t.DueDate.Before(today) {
				p.Overdue++
			}
			if lt := LeadTime(t, now); lt.Valid {
				leadDays += lt.Days
				leadCount++
			}
		}
		if leadCount > 0 {
			p.AvgLeadTimeDays = pointer.To(float64(leadDays) / float64(leadCount))
		}

		report.Users = append(report.Users, p)
		report.TotalTickets += p.Assigned
		report.Resolved += p.Resolved
		report.Overdue += p.Overdue
	}
	return report
}

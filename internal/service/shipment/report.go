package shipment

import (
	"bytes"
	"context"
	"fmt"

	"tracker/internal/entities"
	"tracker/internal/pkg/pdfreport"
)

func (s *Service) DeliveredReport(ctx context.Context, filter entities.ShipmentFilter) ([]byte, error) {
	trucks, err := s.DeliveredTrucks(ctx, filter)
	if err != nil {
		return nil, err
	}

	var total float64
	rows := make([][]string, 0, len(trucks))
	for _, t := range trucks {
		total += t.Total
		u := t.Latest
		rows = append(rows, []string{
			u.SerialNumber,
			u.Transporter,
			u.DriverName,
			u.Vehicle,
			deref(u.DestinationState),
			deref(u.DestinationLocality),
			u.CreatedAt.Format("2006-01-02"),
			fmt.Sprintf("%d", t.StageDelay),
			fmt.Sprintf("%.3f", t.Total),
		})
	}

	subtitle := []string{fmt.Sprintf("Trucks: %d", len(trucks))}
	if filter.Transporter != "" {
		subtitle = append(subtitle, "Transporter: "+filter.Transporter)
	}
	if filter.DestinationState != "" {
		subtitle = append(subtitle, "State: "+filter.DestinationState)
	}

	var buf bytes.Buffer
	err = pdfreport.RenderTable(&buf, pdfreport.Table{
		Title:    "Delivered Trucks",
		Subtitle: subtitle,
		Columns: []pdfreport.Column{
			{Title: "Serial", Width: 0.11},
			{Title: "Transporter", Width: 0.15},
			{Title: "Driver", Width: 0.14},
			{Title: "Vehicle", Width: 0.1},
			{Title: "State", Width: 0.11},
			{Title: "Locality", Width: 0.12},
			{Title: "Delivered", Width: 0.09, Align: "C"},
			{Title: "Days", Width: 0.07, Align: "R"},
			{Title: "Total", Width: 0.11, Align: "R"},
		},
		Rows:        rows,
		Footer:      []string{"", "", "", "", "", "", "", "Total", fmt.Sprintf("%.3f", total)},
		GeneratedAt: s.now(),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package delivery

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"slices"

	"tracker/internal/entities"
	"tracker/internal/pkg/pdfreport"
)

// Document готовый PDF с именем файла.
type Document struct {
	Filename string
	Content  []byte
}

func (s *Service) LoadingOrderReport(ctx context.Context, filter entities.DeliveryFilter) ([]byte, error) {
	deliveries, err := s.repository.FindDeliveries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find loading orders: %w", err)
	}

	var total float64
	rows := make([][]string, 0, len(deliveries))
	for _, d := range deliveries {
		total += d.NetQuantity
		rows = append(rows, []string{
			d.OutboundDeliveryNumber,
			d.ItemNumber,
			d.LoadingDate.Format("2006-01-02"),
			d.LTINumber,
			d.TransporterName,
			d.Destination,
			d.MaterialDescription,
			d.DriverName,
			fmt.Sprintf("%.3f", d.NetQuantity),
		})
	}

	subtitle := []string{fmt.Sprintf("Records: %d", len(deliveries))}
	if filter.Transporter != "" {
		subtitle = append(subtitle, "Transporter: "+filter.Transporter)
	}
	if filter.Destination != "" {
		subtitle = append(subtitle, "Destination: "+filter.Destination)
	}
	if filter.From != nil || filter.To != nil {
		subtitle = append(subtitle, "Loading date: "+formatPeriod(filter))
	}

	var buf bytes.Buffer
	err = pdfreport.RenderTable(&buf, pdfreport.Table{
		Title:    "Loading Orders Report",
		Subtitle: subtitle,
		Columns: []pdfreport.Column{
			{Title: "LO Number", Width: 0.1},
			{Title: "Item", Width: 0.05, Align: "C"},
			{Title: "Date", Width: 0.08, Align: "C"},
			{Title: "LTI", Width: 0.11},
			{Title: "Transporter", Width: 0.14},
			{Title: "Destination", Width: 0.13},
			{Title: "Material", Width: 0.18},
			{Title: "Driver", Width: 0.12},
			{Title: "Net (MT)", Width: 0.09, Align: "R"},
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

// PrintLoadingOrder одна печатная форма на каждый склад отгрузки.
// Непустой location оставляет только этот склад.
func (s *Service) PrintLoadingOrder(ctx context.Context, number, location string) ([]Document, error) {
	lines, err := s.GetLoadingOrder(ctx, number)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]entities.Delivery)
	for _, l := range lines {
		groups[l.StorageLocationName] = append(groups[l.StorageLocationName], l)
	}
	if location != "" {
		selected, ok := groups[location]
		if !ok {
			return nil, ErrDeliveryNotFound
		}
		groups = map[string][]entities.Delivery{location: selected}
	}

	locations := make([]string, 0, len(groups))
	for loc := range groups {
		locations = append(locations, loc)
	}
	slices.Sort(locations)

	docs := make([]Document, 0, len(locations))
	for _, loc := range locations {
		items := groups[loc]
		slices.SortFunc(items, func(a, b entities.Delivery) int {
			return cmp.Compare(a.ItemNumber, b.ItemNumber)
		})

		first := items[0]
		lo := pdfreport.LoadingOrder{
			Number:          first.OutboundDeliveryNumber,
			Date:            first.LoadingDate,
			StorageLocation: loc,
			DriverName:      first.DriverName,
			Vehicle:         first.VehiclePlate,
			Transporter:     first.TransporterName,
			Destination:     first.Destination,
			Notes:           first.Remarks,
			Lines:           make([]pdfreport.LoadingOrderLine, 0, len(items)),
		}
		for _, it := range items {
			lo.Lines = append(lo.Lines, pdfreport.LoadingOrderLine{
				LineNumber:  it.ItemNumber,
				GateNumber:  it.GateNumber,
				Commodity:   it.MaterialDescription,
				BatchNumber: it.BatchNumber,
				Quantity:    it.NetQuantity,
			})
		}

		var buf bytes.Buffer
		if err := pdfreport.RenderLoadingOrder(&buf, lo); err != nil {
			return nil, fmt.Errorf("render loading order %s: %w", loc, err)
		}
		docs = append(docs, Document{
			Filename: pdfreport.LoadingOrderFilename(first.OutboundDeliveryNumber, loc),
			Content:  buf.Bytes(),
		})
	}
	return docs, nil
}

func formatPeriod(filter entities.DeliveryFilter) string {
	left, right := "...", "..."
	if filter.From != nil {
		left = filter.From.Format("2006-01-02")
	}
	if filter.To != nil {
		right = filter.To.Format("2006-01-02")
	}
	return left + " - " + right
}

package shipment

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"tracker/internal/entities"
	"tracker/internal/pkg/metrics"
	"tracker/internal/pkg/spreadsheet"
)

const importSource = "shipments_updates"

// ImportMapping заголовки выгрузки отгрузок -> колонки shipments_updates.
var ImportMapping = spreadsheet.Mapping{
	"PK":                   "pk",
	"line number":          "line_number",
	"Serial Number":        "serial_number",
	"Transporter":          "transporter",
	"Driver Name":          "driver_name",
	"Driver Cell Number":   "driver_phone",
	"Truck Plate Number":   "vehicle",
	"Values":               "values",
	"Total":                "total",
	"Approval Date":        "approval_date",
	"Destination State":    "destination_state",
	"Destination Locality": "destination_locality",
}

var importRequired = []string{
	"pk",
	"line_number",
	"serial_number",
	"transporter",
	"driver_name",
	"driver_phone",
	"vehicle",
}

type lineKey struct {
	pk   int64
	line string
}

// ImportShipments загружает отгрузки со статусом sc_approved. PK, уже
// присутствующие в журнале, пропускаются целиком.
func (s *Service) ImportShipments(ctx context.Context, actor string, r io.Reader, filename string) (*entities.UploadResult, error) {
	rows, err := spreadsheet.Read(r, filename, ImportMapping)
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet: %w", err)
	}

	now := s.now().UTC()
	result := &entities.UploadResult{}
	records := make([]entities.ShipmentUpdate, 0, len(rows))
	for _, row := range rows {
		record, rowErr := updateFromRow(row, actor, now)
		if rowErr != nil {
			result.Rejected = append(result.Rejected, *rowErr)
			continue
		}
		records = append(records, record)
	}

	pks := make([]int64, 0, len(records))
	for _, record := range records {
		if !slices.Contains(pks, record.PK) {
			pks = append(pks, record.PK)
		}
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.ExistingPKs(ctx, pks)
		if err != nil {
			return fmt.Errorf("get existing pks: %w", err)
		}

		known := make(map[int64]struct{}, len(existing))
		for _, pk := range existing {
			known[pk] = struct{}{}
		}

		seen := make(map[lineKey]struct{}, len(records))
		fresh := make([]entities.ShipmentUpdate, 0, len(records))
		for _, record := range records {
			if _, ok := known[record.PK]; ok {
				continue
			}
			key := lineKey{pk: record.PK, line: record.LineNumber}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			fresh = append(fresh, record)
		}

		result.Skipped = len(records) - len(fresh)
		if len(fresh) == 0 {
			return nil
		}

		copied, err := s.repository.CopyUpdates(ctx, fresh)
		if err != nil {
			return fmt.Errorf("copy shipment updates: %w", err)
		}
		result.Uploaded = int(copied)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ImportedRows.WithLabelValues(importSource, "uploaded").Add(float64(result.Uploaded))
	metrics.ImportedRows.WithLabelValues(importSource, "skipped").Add(float64(result.Skipped))
	metrics.ImportedRows.WithLabelValues(importSource, "rejected").Add(float64(len(result.Rejected)))

	return result, nil
}

func updateFromRow(row spreadsheet.Row, actor string, now time.Time) (entities.ShipmentUpdate, *entities.ImportRowError) {
	missing := row.Missing(importRequired)

	pk, err := row.Int("pk")
	if err != nil && !slices.Contains(missing, "pk") {
		missing = append(missing, "pk")
	}
	if len(missing) > 0 {
		return entities.ShipmentUpdate{}, &entities.ImportRowError{Row: row.Number, Missing: missing}
	}

	// пустой или нечисловой total считается нулём
	total, _ := row.Float("total")

	approval := now
	if row.Get("approval_date") != "" {
		if parsed, err := row.Date("approval_date"); err == nil {
			approval = parsed
		}
	}

	return entities.ShipmentUpdate{
		PK:                  pk,
		LineNumber:          row.Get("line_number"),
		SerialNumber:        row.Get("serial_number"),
		Transporter:         row.Get("transporter"),
		DriverName:          row.Get("driver_name"),
		DriverPhone:         row.Get("driver_phone"),
		Vehicle:             row.Get("vehicle"),
		Values:              row.Get("values"),
		Total:               total,
		Status:              entities.ShipmentApproved,
		ApprovalDate:        &approval,
		DestinationState:    optional(row.Get("destination_state")),
		DestinationLocality: optional(row.Get("destination_locality")),
		Version:             1,
		UpdatedBy:           actor,
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package dispatch

import (
	"context"
	"fmt"
	"io"
	"strings"

	"tracker/internal/entities"
	"tracker/internal/pkg/metrics"
	"tracker/internal/pkg/spreadsheet"
)

const importSource = "lti_sto"

// ImportMapping заголовки выгрузки LTI/STO -> колонки lti_sto.
var ImportMapping = spreadsheet.Mapping{
	"Transporter name":   "transporter_name",
	"Transporter code":   "transporter_code",
	"LTI number":         "lti_number",
	"LTI line":           "lti_line",
	"LTI date":           "lti_date",
	"Origin CO":          "origin_co",
	"Origin loc.":        "origin_location",
	"Origin SL Desc.":    "origin_sl_desc",
	"Dest. Loc.":         "destination_location",
	"Dest. SL":           "destination_sl",
	"FRN/CF":             "frn_cf",
	"Consignee":          "consignee",
	"Batch number":       "batch_number",
	"Commod. Desc.":      "commodity_description",
	"LTI qty (MT) Net":   "lti_qty_net",
	"LTI qty (MT) Gross": "lti_qty_gross",
	"TPO Number":         "tpo_number",
}

var importRequired = []string{
	"transporter_name",
	"transporter_code",
	"lti_number",
	"lti_line",
	"lti_date",
	"origin_co",
	"origin_location",
	"origin_sl_desc",
	"destination_location",
	"destination_sl",
	"lti_qty_net",
	"lti_qty_gross",
}

// ImportDispatches загружает строки LTI/STO из таблицы. Строки, чей
// (lti_number, lti_line) уже есть в базе или повторяется в файле, пропускаются.
func (s *Service) ImportDispatches(ctx context.Context, actor string, r io.Reader, filename string) (*entities.UploadResult, error) {
	rows, err := spreadsheet.Read(r, filename, ImportMapping)
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet: %w", err)
	}

	result := &entities.UploadResult{}
	records := make([]entities.Dispatch, 0, len(rows))
	for _, row := range rows {
		record, rowErr := dispatchFromRow(row, actor)
		if rowErr != nil {
			result.Rejected = append(result.Rejected, *rowErr)
			continue
		}
		records = append(records, record)
	}

	numbers := uniqueNumbers(records)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.ExistingLineKeys(ctx, numbers)
		if err != nil {
			return fmt.Errorf("get existing lines: %w", err)
		}

		seen := make(map[entities.LineKey]struct{}, len(existing)+len(records))
		for _, key := range existing {
			seen[key] = struct{}{}
		}

		fresh := make([]entities.Dispatch, 0, len(records))
		for _, record := range records {
			key := entities.LineKey{Number: record.LTINumber, Line: record.LTILine}
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

		copied, err := s.repository.CopyDispatchLines(ctx, fresh)
		if err != nil {
			return fmt.Errorf("copy dispatch lines: %w", err)
		}
		result.Uploaded = int(copied)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.invalidate(numbers...)
	metrics.ImportedRows.WithLabelValues(importSource, "uploaded").Add(float64(result.Uploaded))
	metrics.ImportedRows.WithLabelValues(importSource, "skipped").Add(float64(result.Skipped))
	metrics.ImportedRows.WithLabelValues(importSource, "rejected").Add(float64(len(result.Rejected)))

	return result, nil
}

func dispatchFromRow(row spreadsheet.Row, actor string) (entities.Dispatch, *entities.ImportRowError) {
	missing := row.Missing(importRequired)

	net, err := row.Float("lti_qty_net")
	if err != nil {
		missing = appendOnce(missing, "lti_qty_net")
	}
	gross, err := row.Float("lti_qty_gross")
	if err != nil {
		missing = appendOnce(missing, "lti_qty_gross")
	}
	ltiDate, err := row.Date("lti_date")
	if err != nil {
		missing = appendOnce(missing, "lti_date")
	}

	if len(missing) > 0 {
		return entities.Dispatch{}, &entities.ImportRowError{Row: row.Number, Missing: missing}
	}

	return entities.Dispatch{
		LTINumber:            row.Get("lti_number"),
		LTILine:              row.Get("lti_line"),
		TransporterName:      row.Get("transporter_name"),
		TransporterCode:      row.Get("transporter_code"),
		LTIDate:              ltiDate,
		OriginCO:             row.Get("origin_co"),
		OriginLocation:       row.Get("origin_location"),
		OriginSLDesc:         row.Get("origin_sl_desc"),
		DestinationLocation:  row.Get("destination_location"),
		DestinationSL:        row.Get("destination_sl"),
		FRNCF:                optional(row.Get("frn_cf")),
		Consignee:            optional(row.Get("consignee")),
		BatchNumber:          row.Get("batch_number"),
		CommodityDescription: row.Get("commodity_description"),
		NetQuantity:          net,
		GrossQuantity:        gross,
		TPONumber:            row.Get("tpo_number"),
		CreatedBy:            actor,
	}, nil
}

func appendOnce(fields []string, field string) []string {
	for _, f := range fields {
		if f == field {
			return fields
		}
	}
	return append(fields, field)
}

func uniqueNumbers(records []entities.Dispatch) []string {
	seen := make(map[string]struct{}, len(records))
	numbers := make([]string, 0, len(records))
	for _, r := range records {
		n := strings.TrimSpace(r.LTINumber)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		numbers = append(numbers, n)
	}
	return numbers
}

package dispatch

import (
	"bytes"
	"context"
	"fmt"

	"tracker/internal/entities"
	"tracker/internal/pkg/pdfreport"
)

func (s *Service) DispatchReport(ctx context.Context, filter entities.DispatchFilter) ([]byte, error) {
	dispatches, err := s.repository.FindDispatches(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find dispatches: %w", err)
	}

	var net, gross float64
	rows := make([][]string, 0, len(dispatches))
	for _, d := range dispatches {
		net += d.NetQuantity
		gross += d.GrossQuantity
		rows = append(rows, []string{
			d.LTINumber,
			d.LTILine,
			d.LTIDate.Format("2006-01-02"),
			d.TransporterName,
			d.OriginLocation,
			d.DestinationLocation,
			d.CommodityDescription,
			fmt.Sprintf("%.3f", d.NetQuantity),
			fmt.Sprintf("%.3f", d.GrossQuantity),
		})
	}

	subtitle := []string{fmt.Sprintf("Records: %d", len(dispatches))}
	if filter.Transporter != "" {
		subtitle = append(subtitle, "Transporter: "+filter.Transporter)
	}
	if filter.From != nil || filter.To != nil {
		subtitle = append(subtitle, "Period: "+formatPeriod(filter.From, filter.To))
	}

	var buf bytes.Buffer
	err = pdfreport.RenderTable(&buf, pdfreport.Table{
		Title:    "LTI/STO Report",
		Subtitle: subtitle,
		Columns: []pdfreport.Column{
			{Title: "LTI Number", Width: 0.11},
			{Title: "Line", Width: 0.05, Align: "C"},
			{Title: "Date", Width: 0.08, Align: "C"},
			{Title: "Transporter", Width: 0.14},
			{Title: "Origin", Width: 0.13},
			{Title: "Destination", Width: 0.13},
			{Title: "Commodity", Width: 0.18},
			{Title: "Net (MT)", Width: 0.09, Align: "R"},
			{Title: "Gross (MT)", Width: 0.09, Align: "R"},
		},
		Rows:        rows,
		Footer:      []string{"", "", "", "", "", "", "Total", fmt.Sprintf("%.3f", net), fmt.Sprintf("%.3f", gross)},
		GeneratedAt: s.now(),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PrintDispatch печатная форма одного LTI.
func (s *Service) PrintDispatch(ctx context.Context, number string) ([]byte, error) {
	lines, err := s.GetDispatchLines(ctx, number)
	if err != nil {
		return nil, err
	}

	first := lines[0]
	lti := pdfreport.LTI{
		Number:          first.LTINumber,
		Date:            first.LTIDate,
		FRNCF:           deref(first.FRNCF),
		OriginLocation:  first.OriginLocation,
		OriginSLDesc:    first.OriginSLDesc,
		Destination:     first.DestinationLocation,
		Consignee:       deref(first.Consignee),
		TPONumber:       first.TPONumber,
		TransporterName: first.TransporterName,
		Remarks:         first.Remarks,
		Lines:           make([]pdfreport.LTILine, 0, len(lines)),
	}
	for _, l := range lines {
		lti.Lines = append(lti.Lines, pdfreport.LTILine{
			LineNumber:  l.LTILine,
			Commodity:   l.CommodityDescription,
			BatchNumber: l.BatchNumber,
			Net:         l.NetQuantity,
			Gross:       l.GrossQuantity,
		})
	}

	var buf bytes.Buffer
	if err := pdfreport.RenderLTI(&buf, lti); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

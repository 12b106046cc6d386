package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"tracker/internal/entities"
)

type removeLineArgs struct {
	LineID string `json:"lineId"`
}

type selectDispatchArgs struct {
	LTINumber string `json:"ltiNumber"`
	LTILine   string `json:"ltiLine"`
}

func AddLine(_ context.Context, form entities.DeliveryForm, _ json.RawMessage) (entities.DeliveryForm, error) {
	items := make([]string, len(form.Lines))
	for i, line := range form.Lines {
		items[i] = line.OutboundDeliveryItemNumber
	}

	form.Lines = append(slices.Clone(form.Lines), entities.DeliveryLineInput{
		ID:                         uuid.NewString(),
		OutboundDeliveryItemNumber: nextItemNumber(items),
		Units:                      entities.DefaultDeliveryUnit,
	})
	return form, nil
}

func RemoveLine(_ context.Context, form entities.DeliveryForm, args json.RawMessage) (entities.DeliveryForm, error) {
	var req removeLineArgs
	if err := json.Unmarshal(args, &req); err != nil || req.LineID == "" {
		return form, fmt.Errorf("%w: lineId", ErrMissingRequiredFields)
	}

	idx := slices.IndexFunc(form.Lines, func(l entities.DeliveryLineInput) bool {
		return l.ID == req.LineID
	})
	if idx < 0 {
		return form, ErrLineNotFound
	}

	form.Lines = slices.Delete(slices.Clone(form.Lines), idx, idx+1)
	return form, nil
}

// selectDispatch копирует в черновик шапку выбранной строки LTI.
// Без ltiLine берётся первая строка документа.
func (s *Service) selectDispatch(ctx context.Context, form entities.DeliveryForm, args json.RawMessage) (entities.DeliveryForm, error) {
	var req selectDispatchArgs
	if err := json.Unmarshal(args, &req); err != nil || strings.TrimSpace(req.LTINumber) == "" {
		return form, fmt.Errorf("%w: ltiNumber", ErrMissingRequiredFields)
	}

	var source *entities.Dispatch
	if strings.TrimSpace(req.LTILine) != "" {
		line, err := s.dispatches.GetDispatchLine(ctx, req.LTINumber, req.LTILine)
		if err != nil {
			return form, fmt.Errorf("select dispatch: %w", err)
		}
		source = line
	} else {
		lines, err := s.dispatches.GetDispatchLines(ctx, req.LTINumber)
		if err != nil {
			return form, fmt.Errorf("select dispatch: %w", err)
		}
		source = &lines[0]
	}

	form.BasicInfo.LTINumber = source.LTINumber
	form.BasicInfo.Departure = source.OriginLocation
	form.BasicInfo.Destination = source.DestinationLocation
	form.BasicInfo.Transporter = source.TransporterName
	form.BasicInfo.UnloadingPoint = source.DestinationSL
	form.BasicInfo.Consignee = deref(source.Consignee)
	form.BasicInfo.FRN = deref(source.FRNCF)

	if req.LTILine != "" && len(form.Lines) == 0 {
		form.Lines = []entities.DeliveryLineInput{lineFromDispatch(0, *source)}
	}
	return form, nil
}

// loadLines заменяет строки черновика строками выбранного LTI.
func (s *Service) loadLines(ctx context.Context, form entities.DeliveryForm, _ json.RawMessage) (entities.DeliveryForm, error) {
	if strings.TrimSpace(form.BasicInfo.LTINumber) == "" {
		return form, fmt.Errorf("%w: ltiNumber", ErrMissingRequiredFields)
	}

	dispatches, err := s.dispatches.GetDispatchLines(ctx, form.BasicInfo.LTINumber)
	if err != nil {
		return form, fmt.Errorf("load lines: %w", err)
	}

	lines := make([]entities.DeliveryLineInput, 0, len(dispatches))
	for i, d := range dispatches {
		lines = append(lines, lineFromDispatch(i, d))
	}
	form.Lines = lines
	return form, nil
}

func lineFromDispatch(i int, d entities.Dispatch) entities.DeliveryLineInput {
	return entities.DeliveryLineInput{
		ID:                         uuid.NewString(),
		OutboundDeliveryItemNumber: FormatItemNumber((i + 1) * itemStep),
		LTILine:                    d.LTILine,
		MaterialDescription:        d.CommodityDescription,
		BatchNumber:                d.BatchNumber,
		Units:                      entities.DefaultDeliveryUnit,
		NetQuantity:                strconv.FormatFloat(d.NetQuantity, 'f', -1, 64),
		StorageLocationName:        d.OriginSLDesc,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

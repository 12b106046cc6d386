package dispatch

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"tracker/internal/entities"
	"tracker/internal/pkg/metrics"
	"tracker/internal/service/draft"
	"tracker/pkg/paging"
)

const (
	lookupLimit   = 10
	linesCacheTTL = 5 * time.Minute
)

type Service struct {
	repository Repository
	txManager  TxManager
	cache      *linesCache
	now        func() time.Time
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		cache:      newLinesCache(linesCacheTTL),
		now:        time.Now,
	}
}

// Flow мастер создания LTI/STO из четырёх шагов.
func (s *Service) Flow() draft.Flow[entities.DispatchForm] {
	return draft.Flow[entities.DispatchForm]{
		Kind:     entities.DraftDispatch,
		Steps:    Steps,
		Initial:  initialForm,
		Validate: ValidateStep,
		Submit: func(ctx context.Context, actor string, form entities.DispatchForm) (draft.Receipt, error) {
			receipt, err := s.SubmitDispatch(ctx, actor, form)
			if err != nil {
				return draft.Receipt{}, err
			}
			return draft.Receipt{
				Value:    receipt,
				Location: "/dispatches/" + url.PathEscape(receipt.LTINumber) + "/print.pdf",
			}, nil
		},
		Actions: map[entities.WizardAction]draft.ActionFunc[entities.DispatchForm]{
			entities.ActionAddLine:    AddLine,
			entities.ActionRemoveLine: RemoveLine,
		},
	}
}

func initialForm() entities.DispatchForm {
	return entities.DispatchForm{
		BasicInfo: entities.DispatchBasicInfo{DispatchType: entities.DispatchTypeOffline},
		Lines:     []entities.DispatchLineInput{},
	}
}

// SubmitDispatch выдаёт следующий номер ML-XXXXXXX и вставляет все строки
// одним запросом. Возвращает первую вставленную строку.
func (s *Service) SubmitDispatch(ctx context.Context, actor string, form entities.DispatchForm) (*entities.Dispatch, error) {
	if len(form.Lines) == 0 {
		return nil, ErrEmptyLines
	}

	ltiDate, err := time.Parse(time.DateOnly, strings.TrimSpace(form.BasicInfo.LTIDate))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, form.BasicInfo.LTIDate)
	}

	var receipt entities.Dispatch
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		last, err := s.repository.LastDispatchNumber(ctx, NumberPrefix)
		if err != nil {
			return fmt.Errorf("get last dispatch number: %w", err)
		}

		number, err := NextDispatchNumber(last)
		if err != nil {
			return err
		}

		inserted, err := s.repository.CreateDispatchLines(ctx, flatten(number, actor, ltiDate, form))
		if err != nil {
			return fmt.Errorf("create dispatch lines: %w", err)
		}
		if len(inserted) == 0 {
			return ErrEmptyLines
		}

		receipt = inserted[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.invalidate(receipt.LTINumber)
	metrics.DocumentsSubmitted.WithLabelValues(entities.DraftDispatch.String()).Inc()

	return &receipt, nil
}

func flatten(number, actor string, ltiDate time.Time, form entities.DispatchForm) []entities.Dispatch {
	b, d := form.BasicInfo, form.Destination

	rows := make([]entities.Dispatch, 0, len(form.Lines))
	for i, line := range form.Lines {
		lineNumber := strings.TrimSpace(line.LineNumber)
		if lineNumber == "" {
			lineNumber = FormatLineNumber((i + 1) * lineStep)
		}

		remarks := line.Remarks
		if strings.TrimSpace(remarks) == "" {
			remarks = form.Additional.Remarks
		}

		rows = append(rows, entities.Dispatch{
			LTINumber:             number,
			LTILine:               lineNumber,
			TransporterName:       b.TransporterName,
			TransporterCode:       b.TransporterCode,
			LTIDate:               ltiDate,
			OriginCO:              b.OriginCO,
			OriginLocation:        b.OriginLocation,
			OriginSLDesc:          b.OriginSLDesc,
			DestinationLocation:   d.DestinationLocation,
			DestinationSL:         d.DestinationSL,
			FRNCF:                 optional(d.FRNCF),
			Consignee:             optional(d.Consignee),
			BatchNumber:           line.BatchNumber,
			CommodityDescription:  line.CommodityDescription,
			NetQuantity:           parseQuantity(line.NetQuantity),
			GrossQuantity:         parseQuantity(line.GrossQuantity),
			TPONumber:             form.Additional.TPONumber,
			Remarks:               remarks,
			CreatedBy:             actor,
			OfflineTicketApproval: b.OfflineApprovalNumber,
		})
	}
	return rows
}

// parseQuantity нечисловое значение даёт 0.
func parseQuantity(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 64)
	if err != nil {
		return 0
	}
	return v
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// SearchDispatches автодополнение по части номера LTI.
func (s *Service) SearchDispatches(ctx context.Context, fragment string) ([]entities.DispatchCandidate, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return []entities.DispatchCandidate{}, nil
	}

	candidates, err := s.repository.SearchDispatchNumbers(ctx, fragment, lookupLimit)
	if err != nil {
		return nil, fmt.Errorf("search dispatches: %w", err)
	}

	seen := make(map[string]struct{}, len(candidates))
	result := make([]entities.DispatchCandidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.LTINumber]; ok {
			continue
		}
		seen[c.LTINumber] = struct{}{}
		result = append(result, c)
	}
	return result, nil
}

func (s *Service) GetDispatchLine(ctx context.Context, number, line string) (*entities.Dispatch, error) {
	if !filled(number, line) {
		return nil, ErrMissingRequiredFields
	}

	dispatch, err := s.repository.GetDispatchLine(ctx, number, line)
	if err != nil {
		return nil, fmt.Errorf("get dispatch line: %w", err)
	}
	return dispatch, nil
}

// GetDispatchLines все строки одного LTI, кешируются на пять минут.
func (s *Service) GetDispatchLines(ctx context.Context, number string) ([]entities.Dispatch, error) {
	if !filled(number) {
		return nil, ErrMissingRequiredFields
	}

	lines, err := s.cache.get(ctx, number, func(ctx context.Context) ([]entities.Dispatch, error) {
		lines, err := s.repository.GetDispatchLines(ctx, number)
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			return nil, ErrDispatchNotFound
		}
		return lines, nil
	})
	if err != nil {
		return nil, fmt.Errorf("get dispatch lines: %w", err)
	}
	return slices.Clone(lines), nil
}

func (s *Service) ListDispatches(
	ctx context.Context,
	filter entities.DispatchFilter,
	page paging.Request,
) (paging.Page[entities.Dispatch], error) {
	page = page.Normalize()

	items, total, err := s.repository.ListDispatches(ctx, filter, page)
	if err != nil {
		return paging.Page[entities.Dispatch]{}, fmt.Errorf("list dispatches: %w", err)
	}
	return paging.FromWindow(items, total, page), nil
}

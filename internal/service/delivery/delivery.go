package delivery

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tracker/internal/entities"
	"tracker/internal/pkg/metrics"
	"tracker/internal/service/draft"
	"tracker/pkg/paging"
)

type Service struct {
	repository Repository
	dispatches DispatchLookup
	txManager  TxManager
	newNumber  func() string
	now        func() time.Time
}

func New(repository Repository, dispatches DispatchLookup, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		dispatches: dispatches,
		txManager:  txManager,
		newNumber:  randomNumber,
		now:        time.Now,
	}
}

// Flow мастер Loading Order / Waybill.
func (s *Service) Flow() draft.Flow[entities.DeliveryForm] {
	return draft.Flow[entities.DeliveryForm]{
		Kind:     entities.DraftLoading,
		Steps:    Steps,
		Initial:  initialForm,
		Validate: ValidateStep,
		Submit: func(ctx context.Context, actor string, form entities.DeliveryForm) (draft.Receipt, error) {
			receipt, err := s.SubmitLoadingOrder(ctx, actor, form)
			if err != nil {
				return draft.Receipt{}, err
			}
			return draft.Receipt{
				Value:    receipt,
				Location: "/loading-orders/" + url.PathEscape(receipt.OutboundDeliveryNumber) + "/print.pdf",
			}, nil
		},
		Actions: map[entities.WizardAction]draft.ActionFunc[entities.DeliveryForm]{
			entities.ActionAddLine:        AddLine,
			entities.ActionRemoveLine:     RemoveLine,
			entities.ActionSelectDispatch: s.selectDispatch,
			entities.ActionLoadLines:      s.loadLines,
		},
	}
}

func initialForm() entities.DeliveryForm {
	return entities.DeliveryForm{Lines: []entities.DeliveryLineInput{}}
}

// SubmitLoadingOrder сохраняет все строки LO под одним номером.
// Пустой номер в форме означает выдачу случайного восьмизначного.
func (s *Service) SubmitLoadingOrder(ctx context.Context, actor string, form entities.DeliveryForm) (*entities.Delivery, error) {
	if !filled(form.BasicInfo.LTINumber, form.DriverInfo.SerialNumber, form.DriverInfo.DriverName) {
		return nil, ErrMissingRequiredFields
	}
	if len(form.Lines) == 0 {
		return nil, ErrEmptyLines
	}

	loadingDate := s.now().UTC().Truncate(24 * time.Hour)
	if raw := strings.TrimSpace(form.DriverInfo.LoadingDate); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
		}
		loadingDate = parsed
	}

	var receipt entities.Delivery
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		number := strings.TrimSpace(form.BasicInfo.OutboundDeliveryNumber)
		if number == "" {
			allocated, err := s.allocateNumber(ctx)
			if err != nil {
				return err
			}
			number = allocated
		}

		inserted, err := s.repository.CreateDeliveryLines(ctx, flatten(number, actor, loadingDate, form))
		if err != nil {
			return fmt.Errorf("create loading order lines: %w", err)
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

	metrics.DocumentsSubmitted.WithLabelValues(entities.DraftLoading.String()).Inc()
	return &receipt, nil
}

func flatten(number, actor string, loadingDate time.Time, form entities.DeliveryForm) []entities.Delivery {
	b, d := form.BasicInfo, form.DriverInfo

	rows := make([]entities.Delivery, 0, len(form.Lines))
	for i, line := range form.Lines {
		itemNumber := strings.TrimSpace(line.OutboundDeliveryItemNumber)
		if itemNumber == "" {
			itemNumber = FormatItemNumber((i + 1) * itemStep)
		}

		unit := strings.TrimSpace(line.Units)
		if unit == "" {
			unit = entities.DefaultDeliveryUnit
		}

		rows = append(rows, entities.Delivery{
			OutboundDeliveryNumber: number,
			ItemNumber:             itemNumber,
			LTINumber:              b.LTINumber,
			LTILine:                line.LTILine,
			BatchNumber:            line.BatchNumber,
			StorageLocationName:    line.StorageLocationName,
			MaterialDescription:    line.MaterialDescription,
			Unit:                   unit,
			NetQuantity:            parseQuantity(line.NetQuantity),
			SerialNumber:           d.SerialNumber,
			DriverName:             d.DriverName,
			DriverPhone:            d.DriverPhone,
			VehiclePlate:           d.VehiclePlate,
			LoadingDate:            loadingDate,
			Departure:              b.Departure,
			Destination:            b.Destination,
			TransporterName:        b.Transporter,
			UnloadingPoint:         b.UnloadingPoint,
			Consignee:              b.Consignee,
			FRNCFNumber:            b.FRN,
			GateNumber:             line.GateNumber,
			Remarks:                form.Notes.Remarks,
			CreatedBy:              actor,
		})
	}
	return rows
}

func parseQuantity(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 64)
	if err != nil {
		return 0
	}
	return v
}

func (s *Service) GetLoadingOrder(ctx context.Context, number string) ([]entities.Delivery, error) {
	if !filled(number) {
		return nil, ErrMissingRequiredFields
	}

	lines, err := s.repository.GetDeliveryLines(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("get loading order: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrDeliveryNotFound
	}
	return lines, nil
}

func (s *Service) ListLoadingOrders(
	ctx context.Context,
	filter entities.DeliveryFilter,
	page paging.Request,
) (paging.Page[entities.Delivery], error) {
	page = page.Normalize()

	items, total, err := s.repository.ListDeliveries(ctx, filter, page)
	if err != nil {
		return paging.Page[entities.Delivery]{}, fmt.Errorf("list loading orders: %w", err)
	}
	return paging.FromWindow(items, total, page), nil
}

// GetLineUtilisation сколько по каждой строке LTI уже отгружено.
// Превышение не блокируется, только показывается.
func (s *Service) GetLineUtilisation(ctx context.Context, ltiNumber string) ([]entities.LineUtilisation, error) {
	if !filled(ltiNumber) {
		return nil, ErrMissingRequiredFields
	}

	usage, err := s.repository.LineUtilisation(ctx, ltiNumber)
	if err != nil {
		return nil, fmt.Errorf("get line utilisation: %w", err)
	}
	return usage, nil
}

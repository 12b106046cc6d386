package shipment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tracker/internal/entities"
	"tracker/internal/eventlog"
	"tracker/internal/pkg/metrics"
	"tracker/pkg/paging"
)

const (
	lookupLimit = 10

	ChannelHTTP  = "http"
	ChannelKafka = "kafka"
)

type Service struct {
	repository Repository
	txManager  TxManager
	now        func() time.Time
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		now:        time.Now,
	}
}

// SerialNumber серийный номер отгрузки по её PK.
func SerialNumber(pk int64) string {
	return fmt.Sprintf("SHP-%06d", pk)
}

// AppendUpdate дописывает в журнал новую версию всех строк отгрузки.
// Поля, не заданные в change, копируются из последней версии.
func (s *Service) AppendUpdate(ctx context.Context, channel string, change entities.ShipmentChange) ([]entities.ShipmentUpdate, error) {
	change.SerialNumber = strings.TrimSpace(change.SerialNumber)
	if change.SerialNumber == "" || strings.TrimSpace(change.UpdatedBy) == "" {
		return nil, ErrMissingRequiredFields
	}
	if !change.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, change.Status)
	}

	var appended []entities.ShipmentUpdate
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		lines, err := s.repository.LatestVersionLines(ctx, change.SerialNumber)
		if err != nil {
			return fmt.Errorf("get latest shipment version: %w", err)
		}
		if len(lines) == 0 {
			return ErrShipmentNotFound
		}

		version, err := s.repository.NextVersion(ctx, change.SerialNumber)
		if err != nil {
			return fmt.Errorf("get next shipment version: %w", err)
		}

		updates := make([]entities.ShipmentUpdate, len(lines))
		for i, line := range lines {
			updates[i] = merge(line, change, version)
		}

		appended, err = s.repository.AppendUpdates(ctx, updates)
		if err != nil {
			return fmt.Errorf("append shipment updates: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ShipmentUpdatesAppended.WithLabelValues(channel).Add(float64(len(appended)))
	return appended, nil
}

func merge(previous entities.ShipmentUpdate, change entities.ShipmentChange, version int) entities.ShipmentUpdate {
	next := previous
	next.ID = 0
	next.CreatedAt = time.Time{}
	next.Status = change.Status
	next.Version = version
	next.UpdatedBy = change.UpdatedBy

	if change.Transporter != nil {
		next.Transporter = *change.Transporter
	}
	if change.DriverName != nil {
		next.DriverName = *change.DriverName
	}
	if change.DriverPhone != nil {
		next.DriverPhone = *change.DriverPhone
	}
	if change.Vehicle != nil {
		next.Vehicle = *change.Vehicle
	}
	if change.DestinationState != nil {
		next.DestinationState = change.DestinationState
	}
	if change.DestinationLocality != nil {
		next.DestinationLocality = change.DestinationLocality
	}
	if change.Remarks != nil {
		next.Remarks = change.Remarks
	}
	if change.BatchNumber != nil {
		next.BatchNumber = change.BatchNumber
	}
	if change.WarehouseNumber != nil {
		next.WarehouseNumber = change.WarehouseNumber
	}
	return next
}

// CreateShipment заводит новую отгрузку со статусом sc_approved.
func (s *Service) CreateShipment(ctx context.Context, actor string, shipment entities.NewShipment) ([]entities.ShipmentUpdate, error) {
	if !filled(actor, shipment.DriverName, shipment.Vehicle) {
		return nil, ErrMissingRequiredFields
	}
	if len(shipment.Lines) == 0 {
		return nil, ErrEmptyLines
	}

	approvedAt := s.now().UTC()

	var created []entities.ShipmentUpdate
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		pk, err := s.repository.NextPK(ctx)
		if err != nil {
			return fmt.Errorf("get next shipment pk: %w", err)
		}
		serial := SerialNumber(pk)

		version, err := s.repository.NextVersion(ctx, serial)
		if err != nil {
			return fmt.Errorf("get next shipment version: %w", err)
		}

		updates := make([]entities.ShipmentUpdate, 0, len(shipment.Lines))
		for i, line := range shipment.Lines {
			lineNumber := strings.TrimSpace(line.LineNumber)
			if lineNumber == "" {
				lineNumber = fmt.Sprintf("%03d", (i+1)*10)
			}
			updates = append(updates, entities.ShipmentUpdate{
				PK:                  pk,
				LineNumber:          lineNumber,
				SerialNumber:        serial,
				Transporter:         shipment.Transporter,
				DriverName:          shipment.DriverName,
				DriverPhone:         shipment.DriverPhone,
				Vehicle:             shipment.Vehicle,
				Values:              line.Values,
				Total:               line.Total,
				Status:              entities.ShipmentApproved,
				ApprovalDate:        &approvedAt,
				DestinationState:    shipment.DestinationState,
				DestinationLocality: shipment.DestinationLocality,
				Remarks:             line.Remarks,
				BatchNumber:         line.BatchNumber,
				WarehouseNumber:     line.WarehouseNumber,
				Version:             version,
				UpdatedBy:           actor,
			})
		}

		created, err = s.repository.AppendUpdates(ctx, updates)
		if err != nil {
			return fmt.Errorf("append shipment updates: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ShipmentUpdatesAppended.WithLabelValues(ChannelHTTP).Add(float64(len(created)))
	return created, nil
}

// History все записи отгрузки от старых к новым.
func (s *Service) History(ctx context.Context, serial string) ([]entities.ShipmentUpdate, error) {
	if !filled(serial) {
		return nil, ErrMissingRequiredFields
	}

	history, err := s.repository.History(ctx, serial)
	if err != nil {
		return nil, fmt.Errorf("get shipment history: %w", err)
	}
	if len(history) == 0 {
		return nil, ErrShipmentNotFound
	}
	return eventlog.Log[entities.ShipmentUpdate](history).Stream(serial), nil
}

// ListShipments текущие снимки отгрузок с фильтрами и пагинацией.
func (s *Service) ListShipments(
	ctx context.Context,
	filter entities.ShipmentFilter,
	page paging.Request,
) (paging.Page[entities.ShipmentUpdate], error) {
	history, err := s.repository.ListUpdates(ctx)
	if err != nil {
		return paging.Page[entities.ShipmentUpdate]{}, fmt.Errorf("list shipment updates: %w", err)
	}

	latest := filterLatest(eventlog.ProjectLatest(history), filter)
	return paging.Slice(latest, page), nil
}

// TrucksReport машины в пути по статусам, без доставленных.
func (s *Service) TrucksReport(ctx context.Context, filter entities.ShipmentFilter) ([]entities.StatusGroup, error) {
	history, err := s.repository.ListUpdates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipment updates: %w", err)
	}

	log := eventlog.Log[entities.ShipmentUpdate](history)
	latest := filterLatest(log.Latest(), filter)

	active := make([]entities.ShipmentUpdate, 0, len(latest))
	for _, u := range latest {
		if u.Status != entities.ShipmentArrivedToDestination {
			active = append(active, u)
		}
	}
	return eventlog.GroupByStatus(active, log), nil
}

// DeliveredTrucks отгрузки, дошедшие до получателя.
func (s *Service) DeliveredTrucks(ctx context.Context, filter entities.ShipmentFilter) ([]entities.TruckSummary, error) {
	filter.Status = entities.ShipmentArrivedToDestination

	history, err := s.repository.ListUpdates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipment updates: %w", err)
	}

	log := eventlog.Log[entities.ShipmentUpdate](history)
	latest := filterLatest(log.Latest(), filter)

	trucks := make([]entities.TruckSummary, 0, len(latest))
	for _, u := range latest {
		trucks = append(trucks, entities.TruckSummary{
			Latest:     u,
			StageDelay: eventlog.StageDelay(u, log),
			Total:      eventlog.RunningTotal(log, u.SerialNumber),
		})
	}
	return trucks, nil
}

// SearchDrivers автодополнение по серийному номеру, новые первыми.
func (s *Service) SearchDrivers(ctx context.Context, fragment string) ([]entities.ShipmentCandidate, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return []entities.ShipmentCandidate{}, nil
	}

	candidates, err := s.repository.SearchSerials(ctx, fragment, lookupLimit)
	if err != nil {
		return nil, fmt.Errorf("search drivers: %w", err)
	}

	seen := make(map[string]struct{}, len(candidates))
	result := make([]entities.ShipmentCandidate, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.SerialNumber]; ok {
			continue
		}
		seen[c.SerialNumber] = struct{}{}
		result = append(result, c)
	}
	return result, nil
}

func filterLatest(latest []entities.ShipmentUpdate, filter entities.ShipmentFilter) []entities.ShipmentUpdate {
	out := make([]entities.ShipmentUpdate, 0, len(latest))
	for _, u := range latest {
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		if filter.Transporter != "" && !strings.EqualFold(u.Transporter, filter.Transporter) {
			continue
		}
		if filter.DestinationState != "" && !strings.EqualFold(deref(u.DestinationState), filter.DestinationState) {
			continue
		}
		if filter.DestinationLocality != "" && !strings.EqualFold(deref(u.DestinationLocality), filter.DestinationLocality) {
			continue
		}
		if filter.From != nil && u.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && u.CreatedAt.After(*filter.To) {
			continue
		}
		out = append(out, u)
	}

	return eventlog.Search(out, filter.Search, func(u entities.ShipmentUpdate) []string {
		return []string{u.SerialNumber, u.DriverName, u.Vehicle, u.Transporter}
	})
}

func filled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package shipment

import (
	"tracker/internal/entities"
)

func ToDomain(u *ShipmentUpdateDB) *entities.ShipmentUpdate {
	if u == nil {
		return nil
	}

	return &entities.ShipmentUpdate{
		ID:                  u.ID,
		PK:                  u.PK,
		LineNumber:          u.LineNumber,
		SerialNumber:        u.SerialNumber,
		Transporter:         u.Transporter,
		DriverName:          u.DriverName,
		DriverPhone:         u.DriverPhone,
		Vehicle:             u.Vehicle,
		Values:              u.Values,
		Total:               u.Total,
		Status:              entities.ShipmentStatus(u.Status),
		ApprovalDate:        u.ApprovalDate,
		DestinationState:    u.DestinationState,
		DestinationLocality: u.DestinationLocality,
		Remarks:             u.Remarks,
		BatchNumber:         u.BatchNumber,
		WarehouseNumber:     u.WarehouseNumber,
		Version:             int(u.Version),
		UpdatedBy:           u.UpdatedBy,
		CreatedAt:           u.CreatedAt,
	}
}

func FromDomain(u *entities.ShipmentUpdate) *ShipmentUpdateDB {
	if u == nil {
		return nil
	}

	return &ShipmentUpdateDB{
		ID:                  u.ID,
		PK:                  u.PK,
		LineNumber:          u.LineNumber,
		SerialNumber:        u.SerialNumber,
		Transporter:         u.Transporter,
		DriverName:          u.DriverName,
		DriverPhone:         u.DriverPhone,
		Vehicle:             u.Vehicle,
		Values:              u.Values,
		Total:               u.Total,
		Status:              u.Status.String(),
		ApprovalDate:        u.ApprovalDate,
		DestinationState:    u.DestinationState,
		DestinationLocality: u.DestinationLocality,
		Remarks:             u.Remarks,
		BatchNumber:         u.BatchNumber,
		WarehouseNumber:     u.WarehouseNumber,
		Version:             int32(u.Version),
		UpdatedBy:           u.UpdatedBy,
		CreatedAt:           u.CreatedAt,
	}
}

func ToDomainList(models []ShipmentUpdateDB) []entities.ShipmentUpdate {
	if len(models) == 0 {
		return []entities.ShipmentUpdate{}
	}

	result := make([]entities.ShipmentUpdate, len(models))
	for i := range models {
		result[i] = *ToDomain(&models[i])
	}
	return result
}

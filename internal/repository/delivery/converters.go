package delivery

import (
	"tracker/internal/entities"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	return &entities.Delivery{
		ID:                     d.ID,
		OutboundDeliveryNumber: d.OutboundDeliveryNumber,
		ItemNumber:             d.OutboundDeliveryItemNumber,
		LTINumber:              d.LTINumber,
		LTILine:                d.LTILine,
		BatchNumber:            d.BatchNumber,
		StorageLocationName:    d.StorageLocationName,
		MaterialDescription:    d.MaterialDescription,
		Unit:                   d.Unit,
		NetQuantity:            d.MTNet,
		SerialNumber:           d.SerialNumber,
		DriverName:             d.DriverName,
		DriverPhone:            d.DriverPhone,
		VehiclePlate:           d.VehiclePlate,
		LoadingDate:            d.LoadingDate,
		Departure:              d.Departure,
		Destination:            d.Destination,
		TransporterName:        d.TransporterName,
		UnloadingPoint:         d.UnloadingPoint,
		Consignee:              d.Consignee,
		FRNCFNumber:            d.FRNCFNumber,
		GateNumber:             d.GateNumber,
		Remarks:                d.Remarks,
		CreatedBy:              d.CreatedBy,
		CreatedAt:              d.CreatedAt,
	}
}

func FromDomain(d *entities.Delivery) *DeliveryDB {
	if d == nil {
		return nil
	}

	return &DeliveryDB{
		ID:                         d.ID,
		OutboundDeliveryNumber:     d.OutboundDeliveryNumber,
		OutboundDeliveryItemNumber: d.ItemNumber,
		LTINumber:                  d.LTINumber,
		LTILine:                    d.LTILine,
		BatchNumber:                d.BatchNumber,
		StorageLocationName:        d.StorageLocationName,
		MaterialDescription:        d.MaterialDescription,
		Unit:                       d.Unit,
		MTNet:                      d.NetQuantity,
		SerialNumber:               d.SerialNumber,
		DriverName:                 d.DriverName,
		DriverPhone:                d.DriverPhone,
		VehiclePlate:               d.VehiclePlate,
		LoadingDate:                d.LoadingDate,
		Departure:                  d.Departure,
		Destination:                d.Destination,
		TransporterName:            d.TransporterName,
		UnloadingPoint:             d.UnloadingPoint,
		Consignee:                  d.Consignee,
		FRNCFNumber:                d.FRNCFNumber,
		GateNumber:                 d.GateNumber,
		Remarks:                    d.Remarks,
		CreatedBy:                  d.CreatedBy,
		CreatedAt:                  d.CreatedAt,
	}
}

func ToDomainList(models []DeliveryDB) []entities.Delivery {
	if len(models) == 0 {
		return []entities.Delivery{}
	}

	result := make([]entities.Delivery, len(models))
	for i := range models {
		result[i] = *ToDomain(&models[i])
	}
	return result
}

package dispatch

import (
	"tracker/internal/entities"
)

func ToDomain(d *DispatchDB) *entities.Dispatch {
	if d == nil {
		return nil
	}

	return &entities.Dispatch{
		ID:                    d.ID,
		LTINumber:             d.LTINumber,
		LTILine:               d.LTILine,
		TransporterName:       d.TransporterName,
		TransporterCode:       d.TransporterCode,
		LTIDate:               d.LTIDate,
		OriginCO:              d.OriginCO,
		OriginLocation:        d.OriginLocation,
		OriginSLDesc:          d.OriginSLDesc,
		DestinationLocation:   d.DestinationLocation,
		DestinationSL:         d.DestinationSL,
		FRNCF:                 d.FRNCF,
		Consignee:             d.Consignee,
		BatchNumber:           d.BatchNumber,
		CommodityDescription:  d.CommodityDescription,
		NetQuantity:           d.LTIQtyNet,
		GrossQuantity:         d.LTIQtyGross,
		TPONumber:             d.TPONumber,
		Remarks:               d.Remarks,
		CreatedBy:             d.CreatedBy,
		OfflineTicketApproval: d.OfflineTicketApproval,
		CreatedAt:             d.CreatedAt,
	}
}

func FromDomain(d *entities.Dispatch) *DispatchDB {
	if d == nil {
		return nil
	}

	return &DispatchDB{
		ID:                    d.ID,
		LTINumber:             d.LTINumber,
		LTILine:               d.LTILine,
		TransporterName:       d.TransporterName,
		TransporterCode:       d.TransporterCode,
		LTIDate:               d.LTIDate,
		OriginCO:              d.OriginCO,
		OriginLocation:        d.OriginLocation,
		OriginSLDesc:          d.OriginSLDesc,
		DestinationLocation:   d.DestinationLocation,
		DestinationSL:         d.DestinationSL,
		FRNCF:                 d.FRNCF,
		Consignee:             d.Consignee,
		BatchNumber:           d.BatchNumber,
		CommodityDescription:  d.CommodityDescription,
		LTIQtyNet:             d.NetQuantity,
		LTIQtyGross:           d.GrossQuantity,
		TPONumber:             d.TPONumber,
		Remarks:               d.Remarks,
		CreatedBy:             d.CreatedBy,
		OfflineTicketApproval: d.OfflineTicketApproval,
		CreatedAt:             d.CreatedAt,
	}
}

func ToDomainList(models []DispatchDB) []entities.Dispatch {
	if len(models) == 0 {
		return []entities.Dispatch{}
	}

	result := make([]entities.Dispatch, len(models))
	for i := range models {
		result[i] = *ToDomain(&models[i])
	}
	return result
}

package dto

import (
	"time"

	"tracker/internal/entities"
)

type Delivery struct {
	ID                     int64     `json:"id"`
	OutboundDeliveryNumber string    `json:"outboundDeliveryNumber"`
	ItemNumber             string    `json:"outboundDeliveryItemNumber"`
	LTINumber              string    `json:"ltiNumber"`
	LTILine                string    `json:"ltiLine"`
	BatchNumber            string    `json:"batchNumber"`
	StorageLocationName    string    `json:"storageLocationName"`
	MaterialDescription    string    `json:"materialDescription"`
	Unit                   string    `json:"unit"`
	NetQuantity            float64   `json:"mtNet"`
	SerialNumber           string    `json:"serialNumber"`
	DriverName             string    `json:"driverName"`
	DriverPhone            string    `json:"driverPhone"`
	VehiclePlate           string    `json:"vehiclePlate"`
	LoadingDate            string    `json:"loadingDate"`
	Departure              string    `json:"departure"`
	Destination            string    `json:"destination"`
	TransporterName        string    `json:"transporterName"`
	UnloadingPoint         string    `json:"unloadingPoint"`
	Consignee              string    `json:"consignee"`
	FRNCFNumber            string    `json:"frnCfNumber"`
	GateNumber             string    `json:"gateNumber"`
	Remarks                string    `json:"remarks"`
	CreatedBy              string    `json:"createdBy"`
	CreatedAt              time.Time `json:"createdAt"`
}

func FromDelivery(d entities.Delivery) Delivery {
	return Delivery{
		ID:                     d.ID,
		OutboundDeliveryNumber: d.OutboundDeliveryNumber,
		ItemNumber:             d.ItemNumber,
		LTINumber:              d.LTINumber,
		LTILine:                d.LTILine,
		BatchNumber:            d.BatchNumber,
		StorageLocationName:    d.StorageLocationName,
		MaterialDescription:    d.MaterialDescription,
		Unit:                   d.Unit,
		NetQuantity:            d.NetQuantity,
		SerialNumber:           d.SerialNumber,
		DriverName:             d.DriverName,
		DriverPhone:            d.DriverPhone,
		VehiclePlate:           d.VehiclePlate,
		LoadingDate:            date(d.LoadingDate),
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

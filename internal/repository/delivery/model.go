package delivery

import (
	"slices"
	"time"
)

type DeliveryDB struct {
	ID                         int64
	OutboundDeliveryNumber     string
	OutboundDeliveryItemNumber string
	LTINumber                  string
	LTILine                    string
	BatchNumber                string
	StorageLocationName        string
	MaterialDescription        string
	Unit                       string
	MTNet                      float64
	SerialNumber               string
	DriverName                 string
	DriverPhone                string
	VehiclePlate               string
	LoadingDate                time.Time
	Departure                  string
	Destination                string
	TransporterName            string
	UnloadingPoint             string
	Consignee                  string
	FRNCFNumber                string
	GateNumber                 string
	Remarks                    string
	CreatedBy                  string
	CreatedAt                  time.Time
}

var insertColumns = []string{
	"outbound_delivery_number",
	"outbound_delivery_item_number",
	"lti_number",
	"lti_line",
	"batch_number",
	"storage_location_name",
	"material_description",
	"unit",
	"mt_net",
	"serial_number",
	"driver_name",
	"driver_phone",
	"vehicle_plate",
	"loading_date",
	"departure",
	"destination",
	"transporter_name",
	"unloading_point",
	"consignee",
	"frn_cf_number",
	"gate_number",
	"remarks",
	"created_by",
}

var selectColumns = slices.Concat([]string{"id"}, insertColumns, []string{"created_at"})

func (d *DeliveryDB) insertValues() []interface{} {
	return []interface{}{
		d.OutboundDeliveryNumber,
		d.OutboundDeliveryItemNumber,
		d.LTINumber,
		d.LTILine,
		d.BatchNumber,
		d.StorageLocationName,
		d.MaterialDescription,
		d.Unit,
		d.MTNet,
		d.SerialNumber,
		d.DriverName,
		d.DriverPhone,
		d.VehiclePlate,
		d.LoadingDate,
		d.Departure,
		d.Destination,
		d.TransporterName,
		d.UnloadingPoint,
		d.Consignee,
		d.FRNCFNumber,
		d.GateNumber,
		d.Remarks,
		d.CreatedBy,
	}
}

func (d *DeliveryDB) scanTargets() []interface{} {
	return []interface{}{
		&d.ID,
		&d.OutboundDeliveryNumber,
		&d.OutboundDeliveryItemNumber,
		&d.LTINumber,
		&d.LTILine,
		&d.BatchNumber,
		&d.StorageLocationName,
		&d.MaterialDescription,
		&d.Unit,
		&d.MTNet,
		&d.SerialNumber,
		&d.DriverName,
		&d.DriverPhone,
		&d.VehiclePlate,
		&d.LoadingDate,
		&d.Departure,
		&d.Destination,
		&d.TransporterName,
		&d.UnloadingPoint,
		&d.Consignee,
		&d.FRNCFNumber,
		&d.GateNumber,
		&d.Remarks,
		&d.CreatedBy,
		&d.CreatedAt,
	}
}

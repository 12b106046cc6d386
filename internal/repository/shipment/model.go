package shipment

import (
	"slices"
	"time"
)

type ShipmentUpdateDB struct {
	ID                  int64
	PK                  int64
	LineNumber          string
	SerialNumber        string
	Transporter         string
	DriverName          string
	DriverPhone         string
	Vehicle             string
	Values              string
	Total               float64
	Status              string
	ApprovalDate        *time.Time
	DestinationState    *string
	DestinationLocality *string
	Remarks             *string
	BatchNumber         *string
	WarehouseNumber     *string
	Version             int32
	UpdatedBy           string
	CreatedAt           time.Time
}

var insertColumns = []string{
	"pk",
	"line_number",
	"serial_number",
	"transporter",
	"driver_name",
	"driver_phone",
	"vehicle",
	`"values"`,
	"total",
	"status",
	"approval_date",
	"destination_state",
	"destination_locality",
	"remarks",
	"batch_number",
	"warehouse_number",
	"version",
	"updated_by",
}

// copyColumns те же колонки без кавычек: pgx.CopyFrom экранирует имена сам.
var copyColumns = slices.Concat(insertColumns[:7], []string{"values"}, insertColumns[8:])

var selectColumns = slices.Concat([]string{"id"}, insertColumns, []string{"created_at"})

func (u *ShipmentUpdateDB) insertValues() []interface{} {
	return []interface{}{
		u.PK,
		u.LineNumber,
		u.SerialNumber,
		u.Transporter,
		u.DriverName,
		u.DriverPhone,
		u.Vehicle,
		u.Values,
		u.Total,
		u.Status,
		u.ApprovalDate,
		u.DestinationState,
		u.DestinationLocality,
		u.Remarks,
		u.BatchNumber,
		u.WarehouseNumber,
		u.Version,
		u.UpdatedBy,
	}
}

func (u *ShipmentUpdateDB) scanTargets() []interface{} {
	return []interface{}{
		&u.ID,
		&u.PK,
		&u.LineNumber,
		&u.SerialNumber,
		&u.Transporter,
		&u.DriverName,
		&u.DriverPhone,
		&u.Vehicle,
		&u.Values,
		&u.Total,
		&u.Status,
		&u.ApprovalDate,
		&u.DestinationState,
		&u.DestinationLocality,
		&u.Remarks,
		&u.BatchNumber,
		&u.WarehouseNumber,
		&u.Version,
		&u.UpdatedBy,
		&u.CreatedAt,
	}
}

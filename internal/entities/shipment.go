package entities

import "time"

type ShipmentStatus string

const (
	ShipmentApproved             ShipmentStatus = "sc_approved"
	ShipmentReportedToWarehouse  ShipmentStatus = "reported_to_wh"
	ShipmentLOIssued             ShipmentStatus = "lo_issued"
	ShipmentUnderLoading         ShipmentStatus = "under_loading"
	ShipmentLoadingCompleted     ShipmentStatus = "loading_completed"
	ShipmentArrivedToMIIF        ShipmentStatus = "arrived_to_mi_if"
	ShipmentDepartedMIIF         ShipmentStatus = "departed_mi_if"
	ShipmentInTransit            ShipmentStatus = "in_transit"
	ShipmentArrivedToDestination ShipmentStatus = "arrived_to_destination"
)

// ShipmentStatuses жизненный цикл в порядке прохождения.
var ShipmentStatuses = []ShipmentStatus{
	ShipmentApproved,
	ShipmentReportedToWarehouse,
	ShipmentLOIssued,
	ShipmentUnderLoading,
	ShipmentLoadingCompleted,
	ShipmentArrivedToMIIF,
	ShipmentDepartedMIIF,
	ShipmentInTransit,
	ShipmentArrivedToDestination,
}

var shipmentStatusLabels = map[ShipmentStatus]string{
	ShipmentApproved:             "SC Approved",
	ShipmentReportedToWarehouse:  "Reported to WH",
	ShipmentLOIssued:             "LO Issued",
	ShipmentUnderLoading:         "Under Loading",
	ShipmentLoadingCompleted:     "Loading Completed",
	ShipmentArrivedToMIIF:        "Arrived to MI/IF",
	ShipmentDepartedMIIF:         "Departed MI/IF",
	ShipmentInTransit:            "In Transit",
	ShipmentArrivedToDestination: "Arrived to Destination",
}

func (s ShipmentStatus) String() string {
	return string(s)
}

func (s ShipmentStatus) Label() string {
	if label, ok := shipmentStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s ShipmentStatus) Valid() bool {
	_, ok := shipmentStatusLabels[s]
	return ok
}

// ShipmentUpdate строка append-only журнала статусов. Каждая строка повторяет
// все атрибуты отгрузки, поэтому последняя строка является снимком.
type ShipmentUpdate struct {
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
	Status              ShipmentStatus
	ApprovalDate        *time.Time
	DestinationState    *string
	DestinationLocality *string
	Remarks             *string
	BatchNumber         *string
	WarehouseNumber     *string
	Version             int
	UpdatedBy           string
	CreatedAt           time.Time
}

// ShipmentChange то, что меняется при новом статусе. Незаданные поля
// берутся из последнего снимка.
type ShipmentChange struct {
	SerialNumber        string
	Status              ShipmentStatus
	Transporter         *string
	DriverName          *string
	DriverPhone         *string
	Vehicle             *string
	DestinationState    *string
	DestinationLocality *string
	Remarks             *string
	BatchNumber         *string
	WarehouseNumber     *string
	UpdatedBy           string
}

type ShipmentFilter struct {
	Search              string
	Status              ShipmentStatus
	Transporter         string
	DestinationState    string
	DestinationLocality string
	From                *time.Time
	To                  *time.Time
}

// TruckSummary строка отчёта по машинам в пути.
type TruckSummary struct {
	Latest     ShipmentUpdate
	StageDelay int
	Total      float64
}

type StatusGroup struct {
	Status ShipmentStatus
	Trucks []TruckSummary
}

func (u ShipmentUpdate) StreamKey() string {
	return u.SerialNumber
}

// Supersedes более поздняя запись; при равном времени решает версия.
func (u ShipmentUpdate) Supersedes(other ShipmentUpdate) bool {
	if u.CreatedAt.Equal(other.CreatedAt) {
		return u.Version > other.Version
	}
	return u.CreatedAt.After(other.CreatedAt)
}

// NewShipment новая отгрузка: получает следующий PK и серийный номер SHP-XXXXXX.
type NewShipment struct {
	Transporter         string
	DriverName          string
	DriverPhone         string
	Vehicle             string
	DestinationState    *string
	DestinationLocality *string
	Lines               []NewShipmentLine
}

type NewShipmentLine struct {
	LineNumber      string
	Values          string
	Total           float64
	BatchNumber     *string
	WarehouseNumber *string
	Remarks         *string
}

// ShipmentCandidate вариант автодополнения по серийному номеру.
type ShipmentCandidate struct {
	SerialNumber string
	DriverName   string
	DriverPhone  string
	Vehicle      string
	Transporter  string
}

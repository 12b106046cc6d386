package dto

import (
	"strings"
	"time"

	"tracker/internal/entities"
)

type ShipmentUpdate struct {
	ID                  int64     `json:"id"`
	PK                  int64     `json:"pk"`
	LineNumber          string    `json:"lineNumber"`
	SerialNumber        string    `json:"serialNumber"`
	Transporter         string    `json:"transporter"`
	DriverName          string    `json:"driverName"`
	DriverPhone         string    `json:"driverPhone"`
	Vehicle             string    `json:"vehicle"`
	Values              string    `json:"values"`
	Total               float64   `json:"total"`
	Status              string    `json:"status"`
	StatusLabel         string    `json:"statusLabel"`
	ApprovalDate        *string   `json:"approvalDate,omitempty"`
	DestinationState    *string   `json:"destinationState,omitempty"`
	DestinationLocality *string   `json:"destinationLocality,omitempty"`
	Remarks             *string   `json:"remarks,omitempty"`
	BatchNumber         *string   `json:"batchNumber,omitempty"`
	WarehouseNumber     *string   `json:"warehouseNumber,omitempty"`
	Version             int       `json:"version"`
	UpdatedBy           string    `json:"updatedBy"`
	CreatedAt           time.Time `json:"createdAt"`
}

func FromShipmentUpdate(u entities.ShipmentUpdate) ShipmentUpdate {
	return ShipmentUpdate{
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
		StatusLabel:         u.Status.Label(),
		ApprovalDate:        datePtr(u.ApprovalDate),
		DestinationState:    u.DestinationState,
		DestinationLocality: u.DestinationLocality,
		Remarks:             u.Remarks,
		BatchNumber:         u.BatchNumber,
		WarehouseNumber:     u.WarehouseNumber,
		Version:             u.Version,
		UpdatedBy:           u.UpdatedBy,
		CreatedAt:           u.CreatedAt,
	}
}

// ShipmentChange тело POST /shipments/updates.
type ShipmentChange struct {
	SerialNumber        string  `json:"serialNumber"`
	Status              string  `json:"status"`
	Transporter         *string `json:"transporter,omitempty"`
	DriverName          *string `json:"driverName,omitempty"`
	DriverPhone         *string `json:"driverPhone,omitempty"`
	Vehicle             *string `json:"vehicle,omitempty"`
	DestinationState    *string `json:"destinationState,omitempty"`
	DestinationLocality *string `json:"destinationLocality,omitempty"`
	Remarks             *string `json:"remarks,omitempty"`
	BatchNumber         *string `json:"batchNumber,omitempty"`
	WarehouseNumber     *string `json:"warehouseNumber,omitempty"`
}

func (c ShipmentChange) ToEntity(actor string) entities.ShipmentChange {
	return entities.ShipmentChange{
		SerialNumber:        strings.TrimSpace(c.SerialNumber),
		Status:              entities.ShipmentStatus(c.Status),
		Transporter:         c.Transporter,
		DriverName:          c.DriverName,
		DriverPhone:         c.DriverPhone,
		Vehicle:             c.Vehicle,
		DestinationState:    c.DestinationState,
		DestinationLocality: c.DestinationLocality,
		Remarks:             c.Remarks,
		BatchNumber:         c.BatchNumber,
		WarehouseNumber:     c.WarehouseNumber,
		UpdatedBy:           actor,
	}
}

type NewShipmentLine struct {
	LineNumber      string  `json:"lineNumber"`
	Values          string  `json:"values"`
	Total           float64 `json:"total"`
	BatchNumber     *string `json:"batchNumber,omitempty"`
	WarehouseNumber *string `json:"warehouseNumber,omitempty"`
	Remarks         *string `json:"remarks,omitempty"`
}

type NewShipment struct {
	Transporter         string            `json:"transporter"`
	DriverName          string            `json:"driverName"`
	DriverPhone         string            `json:"driverPhone"`
	Vehicle             string            `json:"vehicle"`
	DestinationState    *string           `json:"destinationState,omitempty"`
	DestinationLocality *string           `json:"destinationLocality,omitempty"`
	Lines               []NewShipmentLine `json:"lines"`
}

func (s NewShipment) ToEntity() entities.NewShipment {
	return entities.NewShipment{
		Transporter:         s.Transporter,
		DriverName:          s.DriverName,
		DriverPhone:         s.DriverPhone,
		Vehicle:             s.Vehicle,
		DestinationState:    s.DestinationState,
		DestinationLocality: s.DestinationLocality,
		Lines: Map(s.Lines, func(l NewShipmentLine) entities.NewShipmentLine {
			return entities.NewShipmentLine{
				LineNumber:      l.LineNumber,
				Values:          l.Values,
				Total:           l.Total,
				BatchNumber:     l.BatchNumber,
				WarehouseNumber: l.WarehouseNumber,
				Remarks:         l.Remarks,
			}
		}),
	}
}

type TruckSummary struct {
	Latest     ShipmentUpdate `json:"latest"`
	StageDelay int            `json:"stageDelay"`
	Total      float64        `json:"total"`
}

func FromTruckSummary(s entities.TruckSummary) TruckSummary {
	return TruckSummary{
		Latest:     FromShipmentUpdate(s.Latest),
		StageDelay: s.StageDelay,
		Total:      s.Total,
	}
}

type StatusGroup struct {
	Status string         `json:"status"`
	Label  string         `json:"label"`
	Trucks []TruckSummary `json:"trucks"`
}

func FromStatusGroup(g entities.StatusGroup) StatusGroup {
	return StatusGroup{
		Status: g.Status.String(),
		Label:  g.Status.Label(),
		Trucks: Map(g.Trucks, FromTruckSummary),
	}
}

type ShipmentCandidate struct {
	SerialNumber string `json:"serialNumber"`
	DriverName   string `json:"driverName"`
	DriverPhone  string `json:"driverPhone"`
	Vehicle      string `json:"vehicle"`
	Transporter  string `json:"transporter"`
}

func FromShipmentCandidate(c entities.ShipmentCandidate) ShipmentCandidate {
	return ShipmentCandidate{
		SerialNumber: c.SerialNumber,
		DriverName:   c.DriverName,
		DriverPhone:  c.DriverPhone,
		Vehicle:      c.Vehicle,
		Transporter:  c.Transporter,
	}
}

package entities

import "time"

// DeliveryForm состояние мастера Loading Order / Waybill.
type DeliveryForm struct {
	BasicInfo  DeliveryBasicInfo   `json:"basicInfo"`
	DriverInfo DeliveryDriverInfo  `json:"driverInfo"`
	Lines      []DeliveryLineInput `json:"lines"`
	Notes      DeliveryNotes       `json:"additionalNotes"`
}

type DeliveryBasicInfo struct {
	OutboundDeliveryNumber string `json:"outboundDeliveryNumber"`
	LTINumber              string `json:"ltiNumber"`
	Departure              string `json:"departure"`
	Destination            string `json:"destination"`
	Transporter            string `json:"transporter"`
	UnloadingPoint         string `json:"unloadingPoint"`
	Consignee              string `json:"consignee"`
	FRN                    string `json:"frn"`
}

type DeliveryDriverInfo struct {
	SerialNumber string `json:"serialNumber"`
	DriverName   string `json:"driverName"`
	DriverPhone  string `json:"driverPhone"`
	VehiclePlate string `json:"vehiclePlate"`
	LoadingDate  string `json:"loadingDate"`
}

type DeliveryLineInput struct {
	ID                         string `json:"id"`
	OutboundDeliveryItemNumber string `json:"outboundDeliveryItemNumber"`
	LTILine                    string `json:"ltiLine"`
	MaterialDescription        string `json:"materialDescription"`
	BatchNumber                string `json:"batchNumber"`
	Units                      string `json:"units"`
	NetQuantity                string `json:"mtNet"`
	GateNumber                 string `json:"gateNumber"`
	StorageLocationName        string `json:"storageLocationName"`
}

type DeliveryNotes struct {
	Remarks string `json:"remarks"`
}

const DefaultDeliveryUnit = "MT"

// Delivery одна строка outbound delivery (obd_waybill).
type Delivery struct {
	ID                     int64
	OutboundDeliveryNumber string
	ItemNumber             string
	LTINumber              string
	LTILine                string
	BatchNumber            string
	StorageLocationName    string
	MaterialDescription    string
	Unit                   string
	NetQuantity            float64
	SerialNumber           string
	DriverName             string
	DriverPhone            string
	VehiclePlate           string
	LoadingDate            time.Time
	Departure              string
	Destination            string
	TransporterName        string
	UnloadingPoint         string
	Consignee              string
	FRNCFNumber            string
	GateNumber             string
	Remarks                string
	CreatedBy              string
	CreatedAt              time.Time
}

type DeliveryFilter struct {
	Search      string
	Transporter string
	Destination string
	From        *time.Time
	To          *time.Time
}

// LineUtilisation сравнивает разрешённое по LTI количество с уже отгруженным.
type LineUtilisation struct {
	LTINumber  string
	LTILine    string
	Authorised float64
	Claimed    float64
}

func (u LineUtilisation) Exceeded() bool {
	return u.Claimed > u.Authorised
}

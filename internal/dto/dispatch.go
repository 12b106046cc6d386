package dto

import (
	"time"

	"tracker/internal/entities"
)

type Dispatch struct {
	ID                    int64     `json:"id"`
	LTINumber             string    `json:"ltiNumber"`
	LTILine               string    `json:"ltiLine"`
	TransporterName       string    `json:"transporterName"`
	TransporterCode       string    `json:"transporterCode"`
	LTIDate               string    `json:"ltiDate"`
	OriginCO              string    `json:"originCo"`
	OriginLocation        string    `json:"originLocation"`
	OriginSLDesc          string    `json:"originSlDesc"`
	DestinationLocation   string    `json:"destinationLocation"`
	DestinationSL         string    `json:"destinationSl"`
	FRNCF                 *string   `json:"frnCf,omitempty"`
	Consignee             *string   `json:"consignee,omitempty"`
	BatchNumber           string    `json:"batchNumber"`
	CommodityDescription  string    `json:"commodityDescription"`
	NetQuantity           float64   `json:"netQuantity"`
	GrossQuantity         float64   `json:"grossQuantity"`
	TPONumber             string    `json:"tpoNumber"`
	Remarks               string    `json:"remarks"`
	CreatedBy             string    `json:"createdBy"`
	OfflineTicketApproval string    `json:"offlineTicketApproval,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

func FromDispatch(d entities.Dispatch) Dispatch {
	return Dispatch{
		ID:                    d.ID,
		LTINumber:             d.LTINumber,
		LTILine:               d.LTILine,
		TransporterName:       d.TransporterName,
		TransporterCode:       d.TransporterCode,
		LTIDate:               date(d.LTIDate),
		OriginCO:              d.OriginCO,
		OriginLocation:        d.OriginLocation,
		OriginSLDesc:          d.OriginSLDesc,
		DestinationLocation:   d.DestinationLocation,
		DestinationSL:         d.DestinationSL,
		FRNCF:                 d.FRNCF,
		Consignee:             d.Consignee,
		BatchNumber:           d.BatchNumber,
		CommodityDescription:  d.CommodityDescription,
		NetQuantity:           d.NetQuantity,
		GrossQuantity:         d.GrossQuantity,
		TPONumber:             d.TPONumber,
		Remarks:               d.Remarks,
		CreatedBy:             d.CreatedBy,
		OfflineTicketApproval: d.OfflineTicketApproval,
		CreatedAt:             d.CreatedAt,
	}
}

type DispatchCandidate struct {
	LTINumber   string `json:"ltiNumber"`
	LineNumber  string `json:"lineNumber"`
	Transporter string `json:"transporter"`
	Destination string `json:"destination"`
}

func FromDispatchCandidate(c entities.DispatchCandidate) DispatchCandidate {
	return DispatchCandidate{
		LTINumber:   c.LTINumber,
		LineNumber:  c.LineNumber,
		Transporter: c.Transporter,
		Destination: c.Destination,
	}
}

type LineUtilisation struct {
	LTINumber  string  `json:"ltiNumber"`
	LTILine    string  `json:"ltiLine"`
	Authorised float64 `json:"authorised"`
	Claimed    float64 `json:"claimed"`
	Remaining  float64 `json:"remaining"`
}

func FromLineUtilisation(u entities.LineUtilisation) LineUtilisation {
	return LineUtilisation{
		LTINumber:  u.LTINumber,
		LTILine:    u.LTILine,
		Authorised: u.Authorised,
		Claimed:    u.Claimed,
		Remaining:  u.Authorised - u.Claimed,
	}
}

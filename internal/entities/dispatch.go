package entities

import "time"

// DispatchForm состояние мастера LTI/STO, хранится в черновике как jsonb.
type DispatchForm struct {
	BasicInfo   DispatchBasicInfo   `json:"basicInfo"`
	Destination DispatchDestination `json:"destination"`
	Lines       []DispatchLineInput `json:"lines"`
	Additional  DispatchAdditional  `json:"additional"`
}

type DispatchBasicInfo struct {
	OfflineApprovalNumber string `json:"offlineApprovalNumber"`
	DispatchType          string `json:"dispatchType"`
	TransporterName       string `json:"transporterName"`
	TransporterCode       string `json:"transporterCode"`
	LTIDate               string `json:"ltiDate"`
	OriginCO              string `json:"originCo"`
	OriginLocation        string `json:"originLocation"`
	OriginSLDesc          string `json:"originSlDesc"`
}

type DispatchDestination struct {
	DestinationLocation string `json:"destinationLocation"`
	DestinationSL       string `json:"destinationSl"`
	FRNCF               string `json:"frnCf"`
	Consignee           string `json:"consignee"`
}

type DispatchLineInput struct {
	ID                   string `json:"id"`
	LineNumber           string `json:"lineNumber"`
	BatchNumber          string `json:"batchNumber"`
	CommodityDescription string `json:"commodityDescription"`
	NetQuantity          string `json:"netQuantity"`
	GrossQuantity        string `json:"grossQuantity"`
	Remarks              string `json:"remarks"`
}

type DispatchAdditional struct {
	TPONumber string `json:"tpoNumber"`
	Remarks   string `json:"remarks"`
}

const (
	DispatchTypeOffline = "offline"
	DispatchTypeNFI     = "nfi"
)

// Dispatch одна строка LTI/STO. Документ = все строки с одним LTINumber.
type Dispatch struct {
	ID                    int64
	LTINumber             string
	LTILine               string
	TransporterName       string
	TransporterCode       string
	LTIDate               time.Time
	OriginCO              string
	OriginLocation        string
	OriginSLDesc          string
	DestinationLocation   string
	DestinationSL         string
	FRNCF                 *string
	Consignee             *string
	BatchNumber           string
	CommodityDescription  string
	NetQuantity           float64
	GrossQuantity         float64
	TPONumber             string
	Remarks               string
	CreatedBy             string
	OfflineTicketApproval string
	CreatedAt             time.Time
}

// DispatchCandidate вариант автодополнения по номеру LTI.
type DispatchCandidate struct {
	LTINumber   string
	LineNumber  string
	Transporter string
	Destination string
}

type DispatchFilter struct {
	Search      string
	Transporter string
	From        *time.Time
	To          *time.Time
}

// LineKey составной ключ строки документа.
type LineKey struct {
	Number string
	Line   string
}

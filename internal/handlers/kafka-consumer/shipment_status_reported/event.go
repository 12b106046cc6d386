package shipment_status_reported

// reportedEvent сообщение сканера на площадке.
type reportedEvent struct {
	SerialNumber string  `json:"serial"`
	Status       string  `json:"status"`
	Remarks      *string `json:"remarks,omitempty"`
	ReportedBy   string  `json:"reported_by"`
}

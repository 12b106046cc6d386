package dispatch

import (
	"slices"
	"time"
)

type DispatchDB struct {
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
	LTIQtyNet             float64
	LTIQtyGross           float64
	TPONumber             string
	Remarks               string
	CreatedBy             string
	OfflineTicketApproval string
	CreatedAt             time.Time
}

var insertColumns = []string{
	"lti_number",
	"lti_line",
	"transporter_name",
	"transporter_code",
	"lti_date",
	"origin_co",
	"origin_location",
	"origin_sl_desc",
	"destination_location",
	"destination_sl",
	"frn_cf",
	"consignee",
	"batch_number",
	"commodity_description",
	"lti_qty_net",
	"lti_qty_gross",
	"tpo_number",
	"remarks",
	"created_by",
	"offline_ticket_approval",
}

var selectColumns = slices.Concat([]string{"id"}, insertColumns, []string{"created_at"})

func (d *DispatchDB) insertValues() []interface{} {
	return []interface{}{
		d.LTINumber,
		d.LTILine,
		d.TransporterName,
		d.TransporterCode,
		d.LTIDate,
		d.OriginCO,
		d.OriginLocation,
		d.OriginSLDesc,
		d.DestinationLocation,
		d.DestinationSL,
		d.FRNCF,
		d.Consignee,
		d.BatchNumber,
		d.CommodityDescription,
		d.LTIQtyNet,
		d.LTIQtyGross,
		d.TPONumber,
		d.Remarks,
		d.CreatedBy,
		d.OfflineTicketApproval,
	}
}

func (d *DispatchDB) scanTargets() []interface{} {
	return []interface{}{
		&d.ID,
		&d.LTINumber,
		&d.LTILine,
		&d.TransporterName,
		&d.TransporterCode,
		&d.LTIDate,
		&d.OriginCO,
		&d.OriginLocation,
		&d.OriginSLDesc,
		&d.DestinationLocation,
		&d.DestinationSL,
		&d.FRNCF,
		&d.Consignee,
		&d.BatchNumber,
		&d.CommodityDescription,
		&d.LTIQtyNet,
		&d.LTIQtyGross,
		&d.TPONumber,
		&d.Remarks,
		&d.CreatedBy,
		&d.OfflineTicketApproval,
		&d.CreatedAt,
	}
}

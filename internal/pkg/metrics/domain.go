package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DocumentsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_documents_submitted_total",
			Help: "Documents created through wizards by kind",
		},
		[]string{"kind"},
	)

	ImportedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_imported_rows_total",
			Help: "Spreadsheet rows processed by import, by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	ShipmentUpdatesAppended = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_shipment_updates_appended_total",
			Help: "Shipment status rows appended, by channel",
		},
		[]string{"channel"},
	)

	LookupCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_lookup_cache_total",
			Help: "LTI lines cache lookups by result",
		},
		[]string{"result"},
	)
)

package respond

import (
	"net/http"
	"time"

	"tracker/internal/entities"
)

func DispatchFilter(r *http.Request) (entities.DispatchFilter, error) {
	from, to, err := period(r)
	if err != nil {
		return entities.DispatchFilter{}, err
	}
	return entities.DispatchFilter{
		Search:      Query(r, "search"),
		Transporter: Query(r, "transporter"),
		From:        from,
		To:          to,
	}, nil
}

func DeliveryFilter(r *http.Request) (entities.DeliveryFilter, error) {
	from, to, err := period(r)
	if err != nil {
		return entities.DeliveryFilter{}, err
	}
	return entities.DeliveryFilter{
		Search:      Query(r, "search"),
		Transporter: Query(r, "transporter"),
		Destination: Query(r, "destination"),
		From:        from,
		To:          to,
	}, nil
}

func ShipmentFilter(r *http.Request) (entities.ShipmentFilter, error) {
	from, to, err := period(r)
	if err != nil {
		return entities.ShipmentFilter{}, err
	}
	return entities.ShipmentFilter{
		Search:              Query(r, "search"),
		Status:              entities.ShipmentStatus(Query(r, "status")),
		Transporter:         Query(r, "transporter"),
		DestinationState:    Query(r, "state"),
		DestinationLocality: Query(r, "locality"),
		From:                from,
		To:                  to,
	}, nil
}

func period(r *http.Request) (from, to *time.Time, err error) {
	if from, err = Date(r, "from"); err != nil {
		return nil, nil, err
	}
	if to, err = Date(r, "to"); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

package delivery

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"tracker/internal/entities"
	"tracker/internal/repository"
	"tracker/internal/service/delivery"
	"tracker/pkg/paging"
)

const table = "obd_waybill"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) DeliveryNumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM obd_waybill WHERE outbound_delivery_number = $1)
	`, number).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected delivery repository exists error: %w", err)
	}
	return exists, nil
}

func (r *Repository) CreateDeliveryLines(ctx context.Context, lines []entities.Delivery) ([]entities.Delivery, error) {
	builder := qb.Insert(table).Columns(insertColumns...)
	for i := range lines {
		builder = builder.Values(FromDomain(&lines[i]).insertValues()...)
	}
	builder = builder.Suffix("RETURNING " + strings.Join(selectColumns, ", "))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, delivery.ErrConflict
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}
	return ToDomainList(models), nil
}

func (r *Repository) GetDeliveryLines(ctx context.Context, number string) ([]entities.Delivery, error) {
	query, args, err := qb.Select(selectColumns...).
		From(table).
		Where(sq.Eq{"outbound_delivery_number": number}).
		OrderBy("outbound_delivery_item_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get lines error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository get lines error: %w", err)
	}
	return ToDomainList(models), nil
}

func (r *Repository) ListDeliveries(
	ctx context.Context,
	filter entities.DeliveryFilter,
	page paging.Request,
) ([]entities.Delivery, int, error) {
	where := filterWhere(filter)

	countQuery, countArgs, err := qb.Select("COUNT(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	var total int
	if err := r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	query, args, err := qb.Select(selectColumns...).
		From(table).
		Where(where).
		OrderBy("loading_date DESC", "outbound_delivery_number DESC", "outbound_delivery_item_number").
		Limit(uint64(page.Limit())).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	return ToDomainList(models), total, nil
}

func (r *Repository) FindDeliveries(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	query, args, err := qb.Select(selectColumns...).
		From(table).
		Where(filterWhere(filter)).
		OrderBy("loading_date", "outbound_delivery_number", "outbound_delivery_item_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository find error: %w", err)
	}

	models, err := r.collect(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository find error: %w", err)
	}
	return ToDomainList(models), nil
}

// LineUtilisation разрешённое количество строки LTI против суммы отгрузок по ней.
func (r *Repository) LineUtilisation(ctx context.Context, ltiNumber string) ([]entities.LineUtilisation, error) {
	rows, err := r.querier.Query(ctx, `
		SELECT l.lti_number, l.lti_line, l.lti_qty_net, COALESCE(SUM(o.mt_net), 0)
		FROM lti_sto l
		LEFT JOIN obd_waybill o ON o.lti_number = l.lti_number AND o.lti_line = l.lti_line
		WHERE l.lti_number = $1
		GROUP BY l.lti_number, l.lti_line, l.lti_qty_net
		ORDER BY l.lti_line
	`, ltiNumber)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository utilisation error: %w", err)
	}
	defer rows.Close()

	usage := make([]entities.LineUtilisation, 0)
	for rows.Next() {
		var u entities.LineUtilisation
		if err := rows.Scan(&u.LTINumber, &u.LTILine, &u.Authorised, &u.Claimed); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository utilisation error: %w", err)
		}
		usage = append(usage, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository utilisation error: %w", err)
	}
	return usage, nil
}

func filterWhere(filter entities.DeliveryFilter) sq.And {
	where := sq.And{}
	if filter.Search != "" {
		pattern := repository.ContainsPattern(filter.Search)
		where = append(where, sq.Or{
			sq.ILike{"outbound_delivery_number": pattern},
			sq.ILike{"lti_number": pattern},
			sq.ILike{"driver_name": pattern},
			sq.ILike{"serial_number": pattern},
		})
	}
	if filter.Transporter != "" {
		where = append(where, sq.Eq{"transporter_name": filter.Transporter})
	}
	if filter.Destination != "" {
		where = append(where, sq.Eq{"destination": filter.Destination})
	}
	if filter.From != nil {
		where = append(where, sq.GtOrEq{"loading_date": *filter.From})
	}
	if filter.To != nil {
		where = append(where, sq.LtOrEq{"loading_date": *filter.To})
	}
	return where
}

func (r *Repository) collect(ctx context.Context, query string, args ...interface{}) ([]DeliveryDB, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var models []DeliveryDB
	for rows.Next() {
		var model DeliveryDB
		if err := rows.Scan(model.scanTargets()...); err != nil {
			return nil, err
		}
		models = append(models, model)
	}
	return models, rows.Err()
}

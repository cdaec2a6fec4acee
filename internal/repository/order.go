package repository

import (
	"context"
	"fmt"
	"time"

	"orderdesk/internal/apperr"
	"orderdesk/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id, customer_name, customer_phone,
	address1, address2, postcode, city, state,
	price, payment_mode, product, staff_id,
	tracking_no, delivery_status, raw_courier_status, courier_name,
	payment_received_at, returned_at, created_at, updated_at`

// OrderRepo represents order repository.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.CustomerName, &o.CustomerPhone,
		&o.Address.Line1, &o.Address.Line2, &o.Address.Postcode, &o.Address.City, &o.Address.State,
		&o.Price, &o.PaymentMode, &o.Product, &o.StaffID,
		&o.TrackingNo, &o.DeliveryStatus, &o.RawCourierStatus, &o.CourierName,
		&o.PaymentReceivedAt, &o.ReturnedAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create - persists a new order.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO orders (
            id, customer_name, customer_phone,
            address1, address2, postcode, city, state,
            price, payment_mode, product, staff_id,
            delivery_status, raw_courier_status, courier_name
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
    `,
		o.ID, o.CustomerName, o.CustomerPhone,
		o.Address.Line1, o.Address.Line2, o.Address.Postcode, o.Address.City, o.Address.State,
		o.Price, o.PaymentMode, o.Product, o.StaffID,
		o.DeliveryStatus, o.RawCourierStatus, o.CourierName,
	)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("create order %s: %w", o.ID, err)
	}
	return nil
}

// Get - returns an order by its ID.
func (r *OrderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

// GetByTracking - returns an order by its courier tracking number.
func (r *OrderRepo) GetByTracking(ctx context.Context, trackingNo string) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE tracking_no=$1`, trackingNo))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by tracking %q: %w", trackingNo, err)
	}
	return o, nil
}

// List returns orders ordered by creation time, newest first.
// If limit/offset are nil, returns the full list.
func (r *OrderRepo) List(ctx context.Context, limit, offset *int) ([]domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	out := make([]domain.Order, 0, capacity)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// SetTracking stamps the courier-assigned tracking number after a
// successful submission. Returns true if a row was affected.
func (r *OrderRepo) SetTracking(ctx context.Context, id, trackingNo, courierName string) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET tracking_no     = $2,
            courier_name    = $3,
            delivery_status = $4,
            updated_at      = now()
        WHERE id = $1
    `, id, trackingNo, courierName, domain.DeliveryProcessing)
	if err != nil {
		return false, fmt.Errorf("set tracking for order %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// PartialOrderUpdate carries optional fields to update on an order.
// A nil field means the attribute is left unchanged.
type PartialOrderUpdate struct {
	ID                string
	DeliveryStatus    *domain.DeliveryStatus
	RawCourierStatus  *string
	PaymentReceivedAt *time.Time
	ReturnedAt        *time.Time
}

// UpdatePartial applies a partial update to an order and returns true if a
// row was affected. Writes are unconditional (last-write-wins).
func (r *OrderRepo) UpdatePartial(ctx context.Context, u PartialOrderUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE orders
        SET
            delivery_status     = COALESCE($2, delivery_status),
            raw_courier_status  = COALESCE($3, raw_courier_status),
            payment_received_at = COALESCE($4, payment_received_at),
            returned_at         = COALESCE($5, returned_at),
            updated_at          = now()
        WHERE id = $1
    `, u.ID, u.DeliveryStatus, u.RawCourierStatus, u.PaymentReceivedAt, u.ReturnedAt)
	if err != nil {
		return false, fmt.Errorf("update order %s: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

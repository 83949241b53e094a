package order

import (
	"context"
	"errors"
	"io"
	"log"

	"storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const headerQ = `
INSERT INTO orders (first_name, last_name, email, address, postal_code, city, total_cents, currency, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending')
RETURNING id::text, status, created_at, updated_at
`
	order := domain.Order{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Address:    in.Address,
		PostalCode: in.PostalCode,
		City:       in.City,
		TotalCents: in.TotalCents,
		Currency:   in.Currency,
	}
	if err := tx.QueryRow(ctx, headerQ,
		in.FirstName,
		in.LastName,
		in.Email,
		in.Address,
		in.PostalCode,
		in.City,
		in.TotalCents,
		in.Currency,
	).Scan(&order.ID, &order.Status, &order.CreatedAt, &order.UpdatedAt); err != nil {
		r.logger.Printf("order repo: insert header email=%s error=%v", in.Email, err)
		return nil, err
	}

	const itemQ = `
INSERT INTO order_items (order_id, product_id, price_cents, quantity)
VALUES ($1, $2, $3, $4)
RETURNING id::text
`
	for _, item := range in.Items {
		oi := domain.OrderItem{
			OrderID:    order.ID,
			ProductID:  item.ProductID,
			PriceCents: item.PriceCents,
			Quantity:   item.Quantity,
		}
		if err := tx.QueryRow(ctx, itemQ, order.ID, item.ProductID, item.PriceCents, item.Quantity).Scan(&oi.ID); err != nil {
			r.logger.Printf("order repo: insert item order=%s product=%s error=%v", order.ID, item.ProductID, err)
			return nil, err
		}
		order.Items = append(order.Items, oi)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created order id=%s items=%d total_cents=%d", order.ID, len(order.Items), order.TotalCents)
	return &order, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	// A non-UUID id cannot match any row; querying would raise a Postgres
	// type error instead of ErrNoRows.
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	const headerQ = `
SELECT id::text, first_name, last_name, email, address, postal_code, city, total_cents, currency, status, created_at, updated_at
FROM orders
WHERE id = $1
`
	var order domain.Order
	if err := r.pool.QueryRow(ctx, headerQ, id).Scan(
		&order.ID,
		&order.FirstName,
		&order.LastName,
		&order.Email,
		&order.Address,
		&order.PostalCode,
		&order.City,
		&order.TotalCents,
		&order.Currency,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%s error=%v", id, err)
		return nil, err
	}

	const itemsQ = `
SELECT id::text, order_id::text, product_id::text, price_cents, quantity
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, itemsQ, order.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.PriceCents, &item.Quantity); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	const q = `
UPDATE orders
SET status = $1, updated_at = now()
WHERE id = $2
RETURNING id::text
`
	var updated string
	if err := r.pool.QueryRow(ctx, q, string(status), id).Scan(&updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return nil, err
	}
	return r.GetByID(ctx, updated)
}

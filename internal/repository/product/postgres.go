package product

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

const productColumns = `id::text, category_id::text, name, slug, COALESCE(description, ''), price_cents, currency, stock, available, COALESCE(image_url, ''), created_at, updated_at`

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

func (r *postgresRepo) ListAvailable(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products
WHERE available = TRUE
ORDER BY created_at DESC
`
	args := []interface{}{}
	if categorySlug != "" {
		q = `
SELECT ` + productColumns + `
FROM products
WHERE available = TRUE
  AND category_id = (SELECT id FROM categories WHERE slug = $1)
ORDER BY created_at DESC
`
		args = append(args, categorySlug)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list category=%q error=%v", categorySlug, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows category=%q error=%v", categorySlug, err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	// A non-UUID id cannot match any row; querying would raise a Postgres
	// type error instead of ErrNoRows.
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("product repo: get id=%s not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE slug = $1
`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get slug=%s error=%v", slug, err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (category_id, name, slug, description, price_cents, currency, stock, available, image_url)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, NULLIF($9, ''))
ON CONFLICT (slug) DO UPDATE SET
    category_id = EXCLUDED.category_id,
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    currency = EXCLUDED.currency,
    stock = EXCLUDED.stock,
    available = EXCLUDED.available,
    image_url = COALESCE(EXCLUDED.image_url, products.image_url),
    updated_at = now()
RETURNING ` + productColumns + `
`
	res, err := scanProduct(r.pool.QueryRow(ctx, q,
		product.CategoryID,
		product.Name,
		product.Slug,
		product.Description,
		product.PriceCents,
		product.Currency,
		product.Stock,
		product.Available,
		product.ImageURL,
	))
	if err != nil {
		r.logger.Printf("product repo: upsert slug=%s error=%v", product.Slug, err)
		return nil, err
	}
	r.logger.Printf("product repo: upserted slug=%s id=%s", res.Slug, res.ID)
	return res, nil
}

func (r *postgresRepo) SetImageURL(ctx context.Context, id, imageURL string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrNotFound
	}
	const q = `
UPDATE products
SET image_url = $1, updated_at = now()
WHERE id = $2
`
	cmd, err := r.pool.Exec(ctx, q, imageURL, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(
		&p.ID,
		&p.CategoryID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.PriceCents,
		&p.Currency,
		&p.Stock,
		&p.Available,
		&p.ImageURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

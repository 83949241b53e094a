package seed

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/domain"
	categoryrepo "storefront/internal/repository/category"
	productrepo "storefront/internal/repository/product"
)

type productSeed struct {
	Category    string
	Name        string
	Slug        string
	Description string
	PriceCents  int64
	Stock       int
}

var categories = []struct {
	Name string
	Slug string
}{
	{Name: "Electronics", Slug: "electronics"},
	{Name: "Clothing", Slug: "clothing"},
	{Name: "Home & Garden", Slug: "home-garden"},
	{Name: "Books", Slug: "books"},
}

var products = []productSeed{
	{Category: "electronics", Name: `MacBook Pro 16"`, Slug: "macbook-pro-16", Description: "Apple laptop with M3 Pro chip, 18GB RAM and 512GB SSD.", PriceCents: 249999, Stock: 12},
	{Category: "electronics", Name: "iPhone 15 Pro", Slug: "iphone-15-pro", Description: "Titanium design, A17 Pro chip, 128GB.", PriceCents: 99999, Stock: 30},
	{Category: "electronics", Name: "Sony WH-1000XM5", Slug: "sony-wh-1000xm5", Description: "Wireless noise cancelling headphones.", PriceCents: 39999, Stock: 25},
	{Category: "electronics", Name: "iPad Air", Slug: "ipad-air", Description: "10.9-inch Liquid Retina display, M1 chip.", PriceCents: 59999, Stock: 18},
	{Category: "clothing", Name: "Classic Denim Jacket", Slug: "classic-denim-jacket", Description: "Timeless denim jacket in medium wash.", PriceCents: 7999, Stock: 40},
	{Category: "clothing", Name: "Premium Cotton T-Shirt", Slug: "premium-cotton-t-shirt", Description: "Soft 100% organic cotton tee.", PriceCents: 2999, Stock: 100},
	{Category: "home-garden", Name: "Smart Robot Vacuum", Slug: "smart-robot-vacuum", Description: "Self-charging robot vacuum with app control.", PriceCents: 44999, Stock: 15},
	{Category: "home-garden", Name: "Espresso Coffee Machine", Slug: "espresso-coffee-machine", Description: "15-bar pump espresso maker with milk frother.", PriceCents: 29999, Stock: 20},
	{Category: "books", Name: "The DevOps Handbook", Slug: "the-devops-handbook", Description: "How to create world-class agility, reliability and security.", PriceCents: 3999, Stock: 50},
	{Category: "books", Name: "Clean Code", Slug: "clean-code", Description: "A handbook of agile software craftsmanship.", PriceCents: 4499, Stock: 45},
}

// Apply inserts the demo catalog. It is idempotent: categories and products
// are upserted by slug, so repeated runs refresh rather than duplicate.
func Apply(ctx context.Context, pool *pgxpool.Pool, currency string, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	catRepo := categoryrepo.NewPostgres(pool)
	prodRepo := productrepo.NewPostgres(pool, logger)

	categoryIDs := make(map[string]string, len(categories))
	for _, c := range categories {
		cat, err := catRepo.Upsert(ctx, c.Name, c.Slug)
		if err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Slug, err)
		}
		categoryIDs[c.Slug] = cat.ID
	}

	for _, p := range products {
		categoryID, ok := categoryIDs[p.Category]
		if !ok {
			return fmt.Errorf("product %s references unknown category %s", p.Slug, p.Category)
		}
		_, err := prodRepo.Upsert(ctx, domain.Product{
			CategoryID:  categoryID,
			Name:        p.Name,
			Slug:        p.Slug,
			Description: p.Description,
			PriceCents:  p.PriceCents,
			Currency:    currency,
			Stock:       p.Stock,
			Available:   true,
			ImageURL:    ImageURLFor(p.Name),
		})
		if err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Slug, err)
		}
	}

	logger.Printf("seed: applied %d categories and %d products", len(categories), len(products))
	return nil
}

package importer

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain"
)

type stubProductRepo struct {
	items []domain.Product
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.items = append(s.items, p)
	return &p, nil
}

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	lookups    int
}

func (s *stubCategoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	s.lookups++
	if c, ok := s.categories[slug]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `category,name,slug,description,price,stock
electronics,Mechanical Keyboard,mechanical-keyboard,Hot-swappable switches,129.99,14
electronics,USB-C Hub,usb-c-hub,7-in-1 aluminium hub,49.50,30
books,Clean Architecture,clean-architecture,,34.99,0
`
	products := &stubProductRepo{}
	categories := &stubCategoryRepo{categories: map[string]*domain.Category{
		"electronics": {ID: "cat-e", Name: "Electronics", Slug: "electronics"},
		"books":       {ID: "cat-b", Name: "Books", Slug: "books"},
	}}
	imp := NewCSVImporter(strings.NewReader(csvData), products, categories, "USD")

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 products imported, got %d", count)
	}
	if len(products.items) != 3 {
		t.Fatalf("expected 3 products saved, got %d", len(products.items))
	}

	first := products.items[0]
	if first.CategoryID != "cat-e" || first.Slug != "mechanical-keyboard" || first.PriceCents != 12999 || first.Stock != 14 {
		t.Fatalf("unexpected product data: %+v", first)
	}
	if first.Currency != "USD" {
		t.Fatalf("expected importer currency, got %s", first.Currency)
	}
	if !first.Available {
		t.Fatalf("expected in-stock product to be available")
	}
	if products.items[2].Available {
		t.Fatalf("expected zero-stock product to be unavailable")
	}

	// Two category slugs across three rows means two lookups, not three.
	if categories.lookups != 2 {
		t.Fatalf("expected 2 category lookups, got %d", categories.lookups)
	}
}

func TestCSVImporter_UnknownCategory(t *testing.T) {
	csvData := `category,name,slug,description,price,stock
garden,Watering Can,watering-can,Galvanized steel,19.99,5
`
	products := &stubProductRepo{}
	categories := &stubCategoryRepo{categories: map[string]*domain.Category{}}
	imp := NewCSVImporter(strings.NewReader(csvData), products, categories, "USD")

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for unknown category")
	}
	if len(products.items) != 0 {
		t.Fatalf("expected no products saved, got %d", len(products.items))
	}
}

func TestCSVImporter_BadPrice(t *testing.T) {
	csvData := `category,name,slug,description,price,stock
books,Some Book,some-book,,free,1
`
	categories := &stubCategoryRepo{categories: map[string]*domain.Category{
		"books": {ID: "cat-b", Slug: "books"},
	}}
	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{}, categories, "USD")

	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for bad price")
	}
}

func TestCSVImporter_SkipsBlankRows(t *testing.T) {
	csvData := `category,name,slug,description,price,stock
books,Some Book,some-book,,12.00,3
,,,,,
`
	categories := &stubCategoryRepo{categories: map[string]*domain.Category{
		"books": {ID: "cat-b", Slug: "books"},
	}}
	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{}, categories, "USD")

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 product imported, got %d", count)
	}
}

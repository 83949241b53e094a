package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type CategoryReader interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates products.
// Expected headers: category, name, slug, description, price, stock.
// The price column is a decimal amount like "2499.99".
type CSVImporter struct {
	reader     *csv.Reader
	products   ProductWriter
	categories CategoryReader
	currency   string
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryReader, currency string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		products:   products,
		categories: categories,
		currency:   currency,
	}
}

type csvRow struct {
	Category string
	Name     string
	Slug     string
	Desc     string
	Cents    int64
	Stock    int
}

// Run parses CSV rows and upserts one product per row. Category slugs are
// resolved once and cached, so rows for the same category cost one lookup.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	categoryIDs := make(map[string]string)
	imported := 0

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if row == nil {
			continue
		}

		categoryID, ok := categoryIDs[row.Category]
		if !ok {
			cat, err := i.categories.GetBySlug(ctx, row.Category)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return imported, fmt.Errorf("row for %q references unknown category %q", row.Slug, row.Category)
				}
				return imported, fmt.Errorf("resolve category %q: %w", row.Category, err)
			}
			categoryID = cat.ID
			categoryIDs[row.Category] = categoryID
		}

		_, err = i.products.Upsert(ctx, domain.Product{
			CategoryID:  categoryID,
			Name:        row.Name,
			Slug:        row.Slug,
			Description: row.Desc,
			PriceCents:  row.Cents,
			Currency:    i.currency,
			Stock:       row.Stock,
			Available:   row.Stock > 0,
		})
		if err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", row.Slug, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	category := pick(record, index, "category")
	name := pick(record, index, "name")
	slug := pick(record, index, "slug")

	// Blank lines and padding rows are skipped, not errors.
	if category == "" && name == "" && slug == "" {
		return nil, nil
	}
	if category == "" || name == "" || slug == "" {
		return nil, fmt.Errorf("invalid product row (missing required fields) for slug %q", slug)
	}

	cents, err := domain.DecimalToCents(pick(record, index, "price"))
	if err != nil {
		return nil, fmt.Errorf("invalid price for slug %q: %w", slug, err)
	}

	stock := 0
	if s := pick(record, index, "stock"); s != "" {
		stock, err = strconv.Atoi(s)
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("invalid stock for slug %q: %s", slug, s)
		}
	}

	return &csvRow{
		Category: category,
		Name:     name,
		Slug:     slug,
		Desc:     pick(record, index, "description"),
		Cents:    cents,
		Stock:    stock,
	}, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

package httpserver

import (
	"storefront/internal/domain"
)

type categoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type productView struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	Stock       int    `json:"stock"`
	Available   bool   `json:"available"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type cartItemView struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Subtotal  string `json:"subtotal"`
}

type cartView struct {
	Items      []cartItemView `json:"items"`
	Length     int            `json:"length"`
	TotalPrice string         `json:"totalPrice"`
}

type orderItemView struct {
	ProductID string `json:"productId"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

type orderView struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Address    string          `json:"address"`
	PostalCode string          `json:"postalCode"`
	City       string          `json:"city"`
	Status     string          `json:"status"`
	TotalPrice string          `json:"totalPrice"`
	Currency   string          `json:"currency"`
	CreatedAt  string          `json:"createdAt"`
	Items      []orderItemView `json:"items"`
}

func toCategoryView(c domain.Category) categoryView {
	return categoryView{ID: c.ID, Name: c.Name, Slug: c.Slug}
}

func toCategoryViews(cats []domain.Category) []categoryView {
	out := make([]categoryView, 0, len(cats))
	for _, c := range cats {
		out = append(out, toCategoryView(c))
	}
	return out
}

func toProductView(p domain.Product) productView {
	return productView{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       domain.CentsToDecimal(p.PriceCents),
		Currency:    p.Currency,
		Stock:       p.Stock,
		Available:   p.Available,
		ImageURL:    p.ImageURL,
	}
}

func toProductViews(ps []domain.Product) []productView {
	out := make([]productView, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductView(p))
	}
	return out
}

func toCartView(cart *domain.Cart) cartView {
	view := cartView{
		Items:      make([]cartItemView, 0, len(cart.Lines)),
		Length:     cart.Len(),
		TotalPrice: domain.CentsToDecimal(cart.TotalCents()),
	}
	for line := range cart.Items() {
		view.Items = append(view.Items, cartItemView{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     domain.CentsToDecimal(line.UnitPriceCents),
			Subtotal:  domain.CentsToDecimal(line.SubtotalCents()),
		})
	}
	return view
}

func toOrderView(o *domain.Order) orderView {
	view := orderView{
		ID:         o.ID,
		FirstName:  o.FirstName,
		LastName:   o.LastName,
		Email:      o.Email,
		Address:    o.Address,
		PostalCode: o.PostalCode,
		City:       o.City,
		Status:     string(o.Status),
		TotalPrice: domain.CentsToDecimal(o.TotalCents),
		Currency:   o.Currency,
		CreatedAt:  o.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Items:      make([]orderItemView, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		view.Items = append(view.Items, orderItemView{
			ProductID: it.ProductID,
			Price:     domain.CentsToDecimal(it.PriceCents),
			Quantity:  it.Quantity,
			Subtotal:  domain.CentsToDecimal(it.SubtotalCents()),
		})
	}
	return view
}

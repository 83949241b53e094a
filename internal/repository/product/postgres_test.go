package product

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"
)

func TestGetByID_MalformedID(t *testing.T) {
	repo := NewPostgres(nil, nil)
	for _, id := range []string{"abc", "123", "", "not-a-uuid-at-all"} {
		_, err := repo.GetByID(context.Background(), id)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetByID(%q): expected ErrNotFound, got %v", id, err)
		}
	}
}

func TestSetImageURL_MalformedID(t *testing.T) {
	repo := NewPostgres(nil, nil)
	err := repo.SetImageURL(context.Background(), "abc", "https://example.com/img.jpg")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

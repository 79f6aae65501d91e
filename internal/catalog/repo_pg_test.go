package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var productColumns = []string{
	"id", "title", "description", "price_cents", "original_price_cents",
	"category", "color", "material", "tags", "occasions", "images",
	"in_stock", "trending", "stripe_price_id", "created_at",
}

func TestPGRepoListActive(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .* FROM products\s+WHERE status = 'active' AND visible = TRUE\s+ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow("p1", "Navy Suit", "Two-piece wool suit", int64(39900), nil,
				"suits", "navy", "wool", "formal,classic", "business,wedding",
				"https://img.example/p1.jpg", true, true, "price_p1", created).
			AddRow("p2", "Linen Shirt", nil, int64(8900), int64(10900),
				"shirts", nil, nil, nil, nil, nil,
				true, false, nil, created))

	repo := &PGRepo{DB: db}
	products, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}

	first := products[0]
	if first.ID != "p1" || first.Name != "Navy Suit" {
		t.Fatalf("unexpected first product: %+v", first)
	}
	if first.Price != 399.00 {
		t.Fatalf("expected price 399.00, got %f", first.Price)
	}
	if len(first.Tags) != 2 || first.Tags[0] != "formal" {
		t.Fatalf("unexpected tags: %v", first.Tags)
	}

	second := products[1]
	if second.OriginalPrice == nil || *second.OriginalPrice != 109.00 {
		t.Fatalf("unexpected original price: %+v", second.OriginalPrice)
	}
	if second.Tags == nil || len(second.Tags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", second.Tags)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM products\s+WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(productColumns))

	repo := &PGRepo{DB: db}
	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoDelete(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE products SET status = 'archived'`).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE products SET status = 'archived'`).
		WithArgs("gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(context.Background(), "gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for archived product, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

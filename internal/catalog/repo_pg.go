package catalog

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const selectColumns = `
id, title, description, price_cents, original_price_cents, category,
color, material,
array_to_string(tags, ','), array_to_string(occasions, ','),
array_to_string(images, ','),
in_stock, trending, stripe_price_id, created_at`

// ListActive returns all active, visible products ordered newest-first.
func (r *PGRepo) ListActive(ctx context.Context) ([]Product, error) {
	query := `
SELECT ` + selectColumns + `
FROM products
WHERE status = 'active' AND visible = TRUE
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, product)
	}
	return out, rows.Err()
}

// GetByID returns a single active product.
func (r *PGRepo) GetByID(ctx context.Context, productID string) (Product, error) {
	query := `
SELECT ` + selectColumns + `
FROM products
WHERE id = $1 AND status = 'active' AND visible = TRUE`

	product, err := scanProduct(r.DB.QueryRowContext(ctx, query, productID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return product, nil
}

// Create inserts a new product row.
func (r *PGRepo) Create(ctx context.Context, row Row) error {
	const query = `
INSERT INTO products (
    id, title, description, price_cents, original_price_cents, category,
    color, material, tags, occasions, images, in_stock, trending,
    stripe_price_id, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8,
    string_to_array(NULLIF($9, ''), ','),
    string_to_array(NULLIF($10, ''), ','),
    string_to_array(NULLIF($11, ''), ','),
    $12, $13, NULLIF($14, ''), $15
)`

	var original sql.NullInt64
	if row.OriginalPriceCents != nil {
		original = sql.NullInt64{Int64: *row.OriginalPriceCents, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		row.ID,
		row.Title,
		row.Description,
		row.PriceCents,
		original,
		row.Category,
		nullString(row.Color),
		nullString(row.Material),
		strings.Join(row.Tags, ","),
		strings.Join(row.Occasions, ","),
		strings.Join(row.Images, ","),
		row.InStock,
		row.Trending,
		row.StripePriceID,
		row.CreatedAt,
	)
	return err
}

// Delete retires a product by marking it archived rather than removing the row.
func (r *PGRepo) Delete(ctx context.Context, productID string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE products SET status = 'archived', updated_at = now() WHERE id = $1 AND status = 'active'`,
		productID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	var row Row
	var description sql.NullString
	var original sql.NullInt64
	var color, material, stripePriceID sql.NullString
	var tags, occasions, images sql.NullString

	err := scanner.Scan(
		&row.ID,
		&row.Title,
		&description,
		&row.PriceCents,
		&original,
		&row.Category,
		&color,
		&material,
		&tags,
		&occasions,
		&images,
		&row.InStock,
		&row.Trending,
		&stripePriceID,
		&row.CreatedAt,
	)
	if err != nil {
		return Product{}, err
	}

	row.Description = description.String
	if original.Valid {
		v := original.Int64
		row.OriginalPriceCents = &v
	}
	row.Color = color.String
	row.Material = material.String
	row.StripePriceID = stripePriceID.String
	row.Tags = splitArray(tags.String)
	row.Occasions = splitArray(occasions.String)
	row.Images = splitArray(images.String)

	return FromRow(row), nil
}

func splitArray(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func nullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

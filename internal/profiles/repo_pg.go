package profiles

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// GetProfile returns the user's profile row.
func (r *PGRepo) GetProfile(ctx context.Context, userID string) (Profile, error) {
	query := `
SELECT user_id, display_name, COALESCE(style_personality, ''),
       array_to_string(preferred_colors, ','), array_to_string(preferred_sizes, ','),
       updated_at
FROM profiles
WHERE user_id = $1`

	var p Profile
	var colors, sizes string
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.DisplayName, &p.StylePersonality, &colors, &sizes, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, err
	}
	p.PreferredColors = splitArray(colors)
	p.PreferredSizes = splitArray(sizes)
	return p, nil
}

// UpsertProfile inserts or replaces the user's profile row.
func (r *PGRepo) UpsertProfile(ctx context.Context, profile Profile) (Profile, error) {
	query := `
INSERT INTO profiles (user_id, display_name, style_personality, preferred_colors, preferred_sizes, updated_at)
VALUES ($1, $2, NULLIF($3, ''), string_to_array(NULLIF($4, ''), ','), string_to_array(NULLIF($5, ''), ','), now())
ON CONFLICT (user_id) DO UPDATE SET
    display_name = EXCLUDED.display_name,
    style_personality = EXCLUDED.style_personality,
    preferred_colors = EXCLUDED.preferred_colors,
    preferred_sizes = EXCLUDED.preferred_sizes,
    updated_at = now()`

	_, err := r.DB.ExecContext(ctx, query,
		profile.UserID,
		profile.DisplayName,
		profile.StylePersonality,
		strings.Join(profile.PreferredColors, ","),
		strings.Join(profile.PreferredSizes, ","),
	)
	if err != nil {
		return Profile{}, err
	}
	return r.GetProfile(ctx, profile.UserID)
}

const addressColumns = `
id, user_id, label, line1, COALESCE(line2, ''), city, region, postal_code,
country, is_default, created_at, updated_at`

// ListAddresses returns the user's addresses, default first.
func (r *PGRepo) ListAddresses(ctx context.Context, userID string) ([]Address, error) {
	query := `
SELECT ` + addressColumns + `
FROM addresses
WHERE user_id = $1
ORDER BY is_default DESC, created_at ASC, id ASC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Address
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, address)
	}
	return out, rows.Err()
}

// CreateAddress inserts a new address for the user.
func (r *PGRepo) CreateAddress(ctx context.Context, address Address) (Address, error) {
	if address.ID == "" {
		address.ID = uuid.NewString()
	}
	query := `
INSERT INTO addresses (id, user_id, label, line1, line2, city, region, postal_code, country, is_default)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10)
RETURNING ` + addressColumns

	return scanAddress(r.DB.QueryRowContext(ctx, query,
		address.ID, address.UserID, address.Label, address.Line1, address.Line2,
		address.City, address.Region, address.PostalCode, address.Country, address.IsDefault,
	))
}

// UpdateAddress updates an address owned by the user.
func (r *PGRepo) UpdateAddress(ctx context.Context, address Address) (Address, error) {
	query := `
UPDATE addresses
SET label = $3, line1 = $4, line2 = NULLIF($5, ''), city = $6, region = $7,
    postal_code = $8, country = $9, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + addressColumns

	updated, err := scanAddress(r.DB.QueryRowContext(ctx, query,
		address.ID, address.UserID, address.Label, address.Line1, address.Line2,
		address.City, address.Region, address.PostalCode, address.Country,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Address{}, ErrAddressNotFound
		}
		return Address{}, err
	}
	return updated, nil
}

// DeleteAddress removes an address owned by the user.
func (r *PGRepo) DeleteAddress(ctx context.Context, userID, addressID string) error {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM addresses WHERE id = $1 AND user_id = $2`, addressID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAddressNotFound
	}
	return nil
}

// SetDefaultAddress clears all defaults for the user and flags the named
// address, in one transaction so the user never has two defaults.
func (r *PGRepo) SetDefaultAddress(ctx context.Context, userID, addressID string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE addresses SET is_default = FALSE, updated_at = now() WHERE user_id = $1 AND is_default = TRUE`,
		userID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE addresses SET is_default = TRUE, updated_at = now() WHERE id = $1 AND user_id = $2`,
		addressID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAddressNotFound
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAddress(row rowScanner) (Address, error) {
	var a Address
	err := row.Scan(
		&a.ID, &a.UserID, &a.Label, &a.Line1, &a.Line2, &a.City, &a.Region,
		&a.PostalCode, &a.Country, &a.IsDefault, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func splitArray(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, ",")
}

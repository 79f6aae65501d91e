package users

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Get returns one user by ID.
func (r *PGRepo) Get(ctx context.Context, userID string) (User, error) {
	query := `
SELECT id, email, full_name, picture_url, created_at, updated_at
FROM users
WHERE id = $1`

	var u User
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&u.ID, &u.Email, &u.FullName, &u.PictureURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

// Upsert inserts the user or refreshes its identity fields on sign-in.
func (r *PGRepo) Upsert(ctx context.Context, user User) (User, error) {
	query := `
INSERT INTO users (id, email, full_name, picture_url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET
    email = EXCLUDED.email,
    full_name = EXCLUDED.full_name,
    picture_url = EXCLUDED.picture_url,
    updated_at = now()
RETURNING id, email, full_name, picture_url, created_at, updated_at`

	var u User
	err := r.DB.QueryRowContext(ctx, query,
		user.ID, user.Email, user.FullName, user.PictureURL,
	).Scan(&u.ID, &u.Email, &u.FullName, &u.PictureURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return User{}, err
	}
	return u, nil
}

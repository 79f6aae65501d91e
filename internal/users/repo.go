package users

import (
	"context"
	"errors"
)

// ErrNotFound means no such user.
var ErrNotFound = errors.New("user not found")

// Repo stores shopper accounts.
type Repo interface {
	Get(ctx context.Context, userID string) (User, error)
	Upsert(ctx context.Context, user User) (User, error)
}

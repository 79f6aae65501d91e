package profiles

import (
	"context"
	"errors"
)

var (
	// ErrProfileNotFound means no profile row exists for the user.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrAddressNotFound means the address does not exist or belongs to
	// another user.
	ErrAddressNotFound = errors.New("address not found")
)

// Repo stores shopper profiles and address books.
type Repo interface {
	GetProfile(ctx context.Context, userID string) (Profile, error)
	UpsertProfile(ctx context.Context, profile Profile) (Profile, error)

	ListAddresses(ctx context.Context, userID string) ([]Address, error)
	CreateAddress(ctx context.Context, address Address) (Address, error)
	UpdateAddress(ctx context.Context, address Address) (Address, error)
	DeleteAddress(ctx context.Context, userID, addressID string) error
	// SetDefaultAddress clears every default flag for the user and sets
	// the named address in one transaction.
	SetDefaultAddress(ctx context.Context, userID, addressID string) error
}

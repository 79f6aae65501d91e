package profiles

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu        sync.RWMutex
	profiles  map[string]Profile
	addresses map[string]Address
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		profiles:  make(map[string]Profile),
		addresses: make(map[string]Address),
	}
}

// GetProfile returns the user's profile.
func (r *MemoryRepo) GetProfile(ctx context.Context, userID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	if !ok {
		return Profile{}, ErrProfileNotFound
	}
	return p, nil
}

// UpsertProfile inserts or replaces the user's profile.
func (r *MemoryRepo) UpsertProfile(ctx context.Context, profile Profile) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	profile.UpdatedAt = time.Now().UTC()
	if profile.PreferredColors == nil {
		profile.PreferredColors = []string{}
	}
	if profile.PreferredSizes == nil {
		profile.PreferredSizes = []string{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.UserID] = profile
	return profile, nil
}

// ListAddresses returns the user's addresses, default first.
func (r *MemoryRepo) ListAddresses(ctx context.Context, userID string) ([]Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Address
	for _, a := range r.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CreateAddress stores a new address.
func (r *MemoryRepo) CreateAddress(ctx context.Context, address Address) (Address, error) {
	if err := ctx.Err(); err != nil {
		return Address{}, err
	}
	if address.ID == "" {
		address.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	address.CreatedAt = now
	address.UpdatedAt = now
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addresses[address.ID] = address
	return address, nil
}

// UpdateAddress updates an address owned by the user.
func (r *MemoryRepo) UpdateAddress(ctx context.Context, address Address) (Address, error) {
	if err := ctx.Err(); err != nil {
		return Address{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.addresses[address.ID]
	if !ok || existing.UserID != address.UserID {
		return Address{}, ErrAddressNotFound
	}
	address.IsDefault = existing.IsDefault
	address.CreatedAt = existing.CreatedAt
	address.UpdatedAt = time.Now().UTC()
	r.addresses[address.ID] = address
	return address, nil
}

// DeleteAddress removes an address owned by the user.
func (r *MemoryRepo) DeleteAddress(ctx context.Context, userID, addressID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.addresses[addressID]
	if !ok || existing.UserID != userID {
		return ErrAddressNotFound
	}
	delete(r.addresses, addressID)
	return nil
}

// SetDefaultAddress clears all defaults for the user and flags one.
func (r *MemoryRepo) SetDefaultAddress(ctx context.Context, userID, addressID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	target, ok := r.addresses[addressID]
	if !ok || target.UserID != userID {
		return ErrAddressNotFound
	}
	for id, a := range r.addresses {
		if a.UserID == userID && a.IsDefault {
			a.IsDefault = false
			r.addresses[id] = a
		}
	}
	target.IsDefault = true
	target.UpdatedAt = time.Now().UTC()
	r.addresses[addressID] = target
	return nil
}

package profiles

import (
	"context"
	"errors"

	"storefront-backend/internal/recommend"
)

// Service wraps the repo with validation and default handling.
type Service struct {
	Repo Repo
}

// Get returns the user's profile, or an empty one when none exists yet.
func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	profile, err := s.Repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return Profile{
				UserID:          userID,
				PreferredColors: []string{},
				PreferredSizes:  []string{},
			}, nil
		}
		return Profile{}, err
	}
	return profile, nil
}

// Update upserts the user's profile.
func (s *Service) Update(ctx context.Context, profile Profile) (Profile, error) {
	if profile.PreferredColors == nil {
		profile.PreferredColors = []string{}
	}
	if profile.PreferredSizes == nil {
		profile.PreferredSizes = []string{}
	}
	return s.Repo.UpsertProfile(ctx, profile)
}

// Preferences adapts the stored profile into the recommendation engine's
// preference shape. A missing profile yields nil, not an error.
func (s *Service) Preferences(ctx context.Context, userID string) (*recommend.Preferences, error) {
	profile, err := s.Repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if len(profile.PreferredColors) == 0 && profile.StylePersonality == "" {
		return nil, nil
	}
	return &recommend.Preferences{
		PreferredColors:  profile.PreferredColors,
		StylePersonality: profile.StylePersonality,
	}, nil
}

// Addresses returns the user's address book.
func (s *Service) Addresses(ctx context.Context, userID string) ([]Address, error) {
	addresses, err := s.Repo.ListAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}
	if addresses == nil {
		addresses = []Address{}
	}
	return addresses, nil
}

// AddAddress validates and stores a new address. The first address a
// user creates becomes their default.
func (s *Service) AddAddress(ctx context.Context, address Address) (Address, error) {
	if err := address.Validate(); err != nil {
		return Address{}, err
	}
	existing, err := s.Repo.ListAddresses(ctx, address.UserID)
	if err != nil {
		return Address{}, err
	}
	if len(existing) == 0 {
		address.IsDefault = true
	}
	return s.Repo.CreateAddress(ctx, address)
}

// UpdateAddress validates and updates an existing address.
func (s *Service) UpdateAddress(ctx context.Context, address Address) (Address, error) {
	if err := address.Validate(); err != nil {
		return Address{}, err
	}
	return s.Repo.UpdateAddress(ctx, address)
}

// RemoveAddress deletes an address owned by the user.
func (s *Service) RemoveAddress(ctx context.Context, userID, addressID string) error {
	return s.Repo.DeleteAddress(ctx, userID, addressID)
}

// SetDefault marks one address as the user's default.
func (s *Service) SetDefault(ctx context.Context, userID, addressID string) error {
	return s.Repo.SetDefaultAddress(ctx, userID, addressID)
}

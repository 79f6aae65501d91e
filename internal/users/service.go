package users

import (
	"context"
	"strings"
)

// Service wraps the repo with sign-in bookkeeping.
type Service struct {
	Repo Repo
	// AdminEmails come from ADMIN_EMAILS, comma separated.
	AdminEmails []string
}

// SignIn upserts the user's account record on every successful OAuth
// sign-in so identity fields stay fresh.
func (s *Service) SignIn(ctx context.Context, user User) (User, error) {
	return s.Repo.Upsert(ctx, user)
}

// Get returns one user by ID.
func (s *Service) Get(ctx context.Context, userID string) (User, error) {
	return s.Repo.Get(ctx, userID)
}

// IsAdmin reports whether the email is on the admin allowlist.
func (s *Service) IsAdmin(email string) bool {
	if email == "" {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(email))
	for _, admin := range s.AdminEmails {
		if strings.ToLower(strings.TrimSpace(admin)) == lower {
			return true
		}
	}
	return false
}

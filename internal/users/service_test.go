package users

import (
	"context"
	"errors"
	"testing"
)

func TestSignInUpsertsAndRefreshes(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	first, err := svc.SignIn(ctx, User{
		ID:       "google:123",
		Email:    "avery@example.com",
		FullName: "Avery Lane",
	})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if first.Email != "avery@example.com" {
		t.Fatalf("unexpected user: %+v", first)
	}

	second, err := svc.SignIn(ctx, User{
		ID:       "google:123",
		Email:    "avery@example.com",
		FullName: "Avery J. Lane",
	})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if second.FullName != "Avery J. Lane" {
		t.Fatalf("sign-in did not refresh the name: %+v", second)
	}

	got, err := svc.Get(ctx, "google:123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FullName != "Avery J. Lane" {
		t.Fatalf("unexpected stored user: %+v", got)
	}
}

func TestGetUnknownUser(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	if _, err := svc.Get(context.Background(), "google:nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIsAdmin(t *testing.T) {
	svc := &Service{AdminEmails: []string{"Admin@Example.com", " ops@example.com "}}

	cases := map[string]bool{
		"admin@example.com":  true,
		"ADMIN@EXAMPLE.COM":  true,
		"ops@example.com":    true,
		"shopper@example.com": false,
		"":                   false,
	}
	for email, want := range cases {
		if got := svc.IsAdmin(email); got != want {
			t.Errorf("IsAdmin(%q) = %v, want %v", email, got, want)
		}
	}
}

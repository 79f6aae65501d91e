package profiles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoGetProfile(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	updated := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .* FROM profiles\s+WHERE user_id = \$1`).
		WithArgs("google:123").
		WillReturnRows(sqlmock.NewRows([]string{
			"user_id", "display_name", "style_personality", "preferred_colors", "preferred_sizes", "updated_at",
		}).AddRow("google:123", "Avery", "classic", "navy,charcoal", "M,40R", updated))

	repo := &PGRepo{DB: db}
	profile, err := repo.GetProfile(context.Background(), "google:123")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.StylePersonality != "classic" {
		t.Fatalf("unexpected style personality: %q", profile.StylePersonality)
	}
	if len(profile.PreferredColors) != 2 || profile.PreferredColors[1] != "charcoal" {
		t.Fatalf("unexpected colors: %v", profile.PreferredColors)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoGetProfileMissing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM profiles\s+WHERE user_id = \$1`).
		WithArgs("google:nobody").
		WillReturnRows(sqlmock.NewRows([]string{
			"user_id", "display_name", "style_personality", "preferred_colors", "preferred_sizes", "updated_at",
		}))

	repo := &PGRepo{DB: db}
	if _, err := repo.GetProfile(context.Background(), "google:nobody"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestPGRepoSetDefaultAddress(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE addresses SET is_default = FALSE`).
		WithArgs("google:123").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE addresses SET is_default = TRUE`).
		WithArgs("addr-1", "google:123").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := &PGRepo{DB: db}
	if err := repo.SetDefaultAddress(context.Background(), "google:123", "addr-1"); err != nil {
		t.Fatalf("SetDefaultAddress: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoSetDefaultAddressUnknownRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE addresses SET is_default = FALSE`).
		WithArgs("google:123").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE addresses SET is_default = TRUE`).
		WithArgs("addr-missing", "google:123").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := &PGRepo{DB: db}
	err = repo.SetDefaultAddress(context.Background(), "google:123", "addr-missing")
	if !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPGRepoDeleteAddress(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM addresses WHERE id = \$1 AND user_id = \$2`).
		WithArgs("addr-1", "google:123").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM addresses WHERE id = \$1 AND user_id = \$2`).
		WithArgs("addr-gone", "google:123").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.DeleteAddress(context.Background(), "google:123", "addr-1"); err != nil {
		t.Fatalf("DeleteAddress: %v", err)
	}
	if err := repo.DeleteAddress(context.Background(), "google:123", "addr-gone"); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

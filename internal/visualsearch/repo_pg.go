package visualsearch

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Insert writes one analytics record.
func (r *PGRepo) Insert(ctx context.Context, entry LogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	query := `
INSERT INTO visual_search_logs (id, session_id, user_id, image_url, analysis, results, processing_ms)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(ctx, query,
		entry.ID,
		entry.SessionID,
		entry.UserID,
		entry.ImageURL,
		[]byte(entry.Analysis),
		[]byte(entry.Results),
		entry.ProcessingMs,
	)
	return err
}

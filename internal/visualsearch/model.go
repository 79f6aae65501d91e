package visualsearch

import (
	"encoding/json"
	"time"
)

// LogEntry is one analytics record for a visual search request. Writes
// are best effort and never block the user-facing response.
type LogEntry struct {
	ID           string          `json:"id"`
	SessionID    string          `json:"sessionId"`
	UserID       string          `json:"userId,omitempty"`
	ImageURL     string          `json:"imageUrl"`
	Analysis     json.RawMessage `json:"analysis"`
	Results      json.RawMessage `json:"results"`
	ProcessingMs int64           `json:"processingMs"`
	CreatedAt    time.Time       `json:"createdAt"`
}

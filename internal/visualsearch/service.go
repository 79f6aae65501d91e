package visualsearch

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"storefront-backend/internal/catalog"
	"storefront-backend/internal/recommend"
	"storefront-backend/internal/shared/metrics"
	"storefront-backend/internal/shared/telemetry"
	"storefront-backend/internal/vision"
)

const (
	maxImageBytes = 8 << 20
	logTimeout    = 10 * time.Second
)

// ErrBadImage means the request's imageData field was not a usable
// base64 image data URL.
var ErrBadImage = errors.New("image data is not a valid data URL")

// Request is one visual search call.
type Request struct {
	ImageData  string
	SearchType string
	SessionID  string
	UserID     string
	Threshold  float64
	Limit      int
}

// Result is the full pipeline output.
type Result struct {
	Matches      []recommend.Scored `json:"searchResults"`
	Analysis     vision.Analysis    `json:"imageAnalysis"`
	Features     vision.Features    `json:"visualFeatures"`
	ProcessingMs int64              `json:"processingTime"`
	ImageURL     string             `json:"imageUrl"`
	SearchType   string             `json:"searchType"`
	UsedFallback bool               `json:"usedFallback"`
}

// ImageSaver persists the uploaded image and yields a public URL.
type ImageSaver interface {
	Save(ctx context.Context, sessionKey, fileName string, r io.Reader) (string, int64, string, error)
	URL(storageKey string) string
}

// Service runs the visual search pipeline: persist the image, describe
// it, reduce the description to scorable features, and rank the catalog
// against them.
type Service struct {
	Vision  vision.Client
	Catalog *catalog.Service
	Store   ImageSaver
	Repo    Repo
	Scorer  recommend.SubScorer
}

// Search executes the pipeline for one uploaded image.
func (s *Service) Search(ctx context.Context, req Request) (Result, error) {
	start := time.Now()

	imageBytes, ext, err := decodeDataURL(req.ImageData)
	if err != nil {
		return Result{}, err
	}

	var imageURL string
	fileName := fmt.Sprintf("visual-search-%d.%s", start.UnixMilli(), ext)
	storageKey, _, _, err := s.Store.Save(ctx, req.SessionID, fileName, bytes.NewReader(imageBytes))
	if err != nil {
		telemetry.Warn("visual search image save failed", map[string]interface{}{
			"session_id": req.SessionID,
			"error":      err.Error(),
		})
	} else {
		imageURL = s.Store.URL(storageKey)
	}

	analysis, usedFallback := s.analyze(ctx, req.ImageData, req.SessionID)
	features := vision.FeaturesFromAnalysis(analysis)

	threshold := req.Threshold
	if threshold <= 0 {
		threshold = recommend.VisualThreshold
	}
	matches := recommend.Rank(traitsFromFeatures(features), s.Catalog.Candidates(ctx), recommend.Options{
		Profile:   recommend.ProfileAdvanced,
		Scorer:    s.Scorer,
		Threshold: threshold,
		Limit:     req.Limit,
		Type:      "visual",
	})

	elapsed := time.Since(start).Milliseconds()
	metrics.IncVisualSearch()
	metrics.ObserveVisualSearchDurationMs(float64(elapsed))

	s.logAsync(req, imageURL, analysis, matches, elapsed)

	return Result{
		Matches:      matches,
		Analysis:     analysis,
		Features:     features,
		ProcessingMs: elapsed,
		ImageURL:     imageURL,
		SearchType:   searchType(req.SearchType),
		UsedFallback: usedFallback,
	}, nil
}

// analyze calls the vision provider and substitutes the fixed fallback
// analysis on any failure so the pipeline never hard-fails.
func (s *Service) analyze(ctx context.Context, imageDataURL, sessionID string) (vision.Analysis, bool) {
	analysis, err := s.Vision.Analyze(ctx, imageDataURL)
	if err == nil {
		return analysis, false
	}
	if !errors.Is(err, vision.ErrNotConfigured) {
		telemetry.Warn("vision analysis failed, using fallback", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
	metrics.IncVisualFallback()
	return vision.FallbackAnalysis(), true
}

// logAsync records the request for analytics without blocking or failing
// the user-facing response.
func (s *Service) logAsync(req Request, imageURL string, analysis vision.Analysis, matches []recommend.Scored, elapsed int64) {
	if s.Repo == nil {
		return
	}
	analysisJSON, _ := json.Marshal(analysis)
	resultsJSON, _ := json.Marshal(matches)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), logTimeout)
		defer cancel()
		err := s.Repo.Insert(ctx, LogEntry{
			SessionID:    req.SessionID,
			UserID:       req.UserID,
			ImageURL:     imageURL,
			Analysis:     analysisJSON,
			Results:      resultsJSON,
			ProcessingMs: elapsed,
		})
		if err != nil {
			telemetry.Warn("visual search analytics insert failed", map[string]interface{}{
				"session_id": req.SessionID,
				"error":      err.Error(),
			})
		}
	}()
}

func traitsFromFeatures(f vision.Features) recommend.Traits {
	return recommend.Traits{
		Style:     strings.ToLower(f.Style),
		Color:     strings.ToLower(f.Color),
		Category:  strings.ToLower(f.Category),
		Formality: f.Formality,
		Keywords:  f.Keywords,
	}
}

// decodeDataURL extracts the raw bytes and file extension from a base64
// image data URL.
func decodeDataURL(dataURL string) ([]byte, string, error) {
	trimmed := strings.TrimSpace(dataURL)
	if !strings.HasPrefix(trimmed, "data:image/") {
		return nil, "", ErrBadImage
	}
	rest := strings.TrimPrefix(trimmed, "data:image/")
	sep := strings.Index(rest, ";base64,")
	if sep <= 0 {
		return nil, "", ErrBadImage
	}
	ext := rest[:sep]
	switch ext {
	case "jpeg", "jpg", "png", "webp", "gif":
	default:
		return nil, "", ErrBadImage
	}
	raw, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return nil, "", ErrBadImage
	}
	if len(raw) == 0 || len(raw) > maxImageBytes {
		return nil, "", ErrBadImage
	}
	if ext == "jpg" {
		ext = "jpeg"
	}
	return raw, ext, nil
}

func searchType(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return "similarity"
	}
	return raw
}

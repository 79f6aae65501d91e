package visualsearch

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/shared/server/middleware"
	"storefront-backend/internal/shared/server/respond"
)

// Handler exposes the visual search endpoint.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/visual-search", h.Search)
}

type searchRequest struct {
	ImageData  string  `json:"imageData"`
	SearchType string  `json:"searchType"`
	SessionID  string  `json:"sessionId"`
	UserID     string  `json:"userId"`
	Threshold  float64 `json:"similarityThreshold"`
	Limit      int     `json:"limit"`
}

// Search handles POST /visual-search.
func (h *Handler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON", nil)
		return
	}
	if req.ImageData == "" {
		respond.Error(c, http.StatusBadRequest, "MISSING_IMAGE", "imageData is required", nil)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = middleware.SessionIDFromContext(c)
	}
	userID := req.UserID
	if ctxUser := middleware.UserIDFromContext(c); ctxUser != "" && !middleware.IsGuest(c) {
		userID = ctxUser
	}

	result, err := h.Service.Search(c.Request.Context(), Request{
		ImageData:  req.ImageData,
		SearchType: req.SearchType,
		SessionID:  sessionID,
		UserID:     userID,
		Threshold:  req.Threshold,
		Limit:      req.Limit,
	})
	if err != nil {
		if errors.Is(err, ErrBadImage) {
			respond.Error(c, http.StatusBadRequest, "INVALID_IMAGE", "imageData must be a base64 image data URL", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "VISUAL_SEARCH_FAILED", "could not run visual search", nil)
		return
	}

	respond.Data(c, http.StatusOK, gin.H{
		"searchResults":  result.Matches,
		"imageAnalysis":  result.Analysis,
		"visualFeatures": result.Features,
		"processingTime": result.ProcessingMs,
		"imageUrl":       result.ImageURL,
		"searchType":     result.SearchType,
		"usedFallback":   result.UsedFallback,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}

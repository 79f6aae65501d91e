package recommend

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/catalog"
	"storefront-backend/internal/shared/metrics"
	"storefront-backend/internal/shared/server/middleware"
	"storefront-backend/internal/shared/server/respond"
)

// Handler exposes the recommendation endpoint.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/recommendations", h.Recommend)
}

type recommendRequest struct {
	Type      string  `json:"type"`
	Context   string  `json:"context"`
	SessionID string  `json:"sessionId"`
	UserID    string  `json:"userId"`
	ProductID string  `json:"productId"`
	Limit     int     `json:"limit"`
	Threshold float64 `json:"similarityThreshold"`
	Profile   string  `json:"profile"`
}

type recommendationItem struct {
	Product catalog.Product `json:"product"`
	Reason  string          `json:"reason"`
	Score   float64         `json:"score"`
	Type    string          `json:"type"`
}

// Recommend handles POST /recommendations.
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON", nil)
		return
	}
	if req.ProductID == "" && req.Context == "" {
		respond.Error(c, http.StatusBadRequest, "MISSING_SOURCE", "productId or context is required", nil)
		return
	}
	if req.ProductID != "" {
		c.Set("productId", req.ProductID)
	}

	userID := req.UserID
	if ctxUser := middleware.UserIDFromContext(c); ctxUser != "" && !middleware.IsGuest(c) {
		userID = ctxUser
	}

	scored, err := h.Service.Recommend(c.Request.Context(), Request{
		Type:      req.Type,
		Context:   req.Context,
		UserID:    userID,
		ProductID: req.ProductID,
		Limit:     req.Limit,
		Threshold: req.Threshold,
		Profile:   req.Profile,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "source product not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "RECOMMENDATION_FAILED", "could not build recommendations", nil)
		return
	}

	metrics.IncRecommendation()

	items := make([]recommendationItem, 0, len(scored))
	for _, s := range scored {
		items = append(items, recommendationItem{
			Product: s.Product,
			Reason:  primaryReason(s.Reasons),
			Score:   s.Score,
			Type:    s.Type,
		})
	}

	respond.Data(c, http.StatusOK, gin.H{
		"recommendations": items,
		"type":            normalizeType(req.Type),
		"context":         req.Context,
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}

func primaryReason(reasons []string) string {
	if len(reasons) == 0 {
		return "Recommended for you"
	}
	return reasons[0]
}

package checkout

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/shared/server/middleware"
	"storefront-backend/internal/shared/server/respond"
)

// Handler exposes the checkout session endpoints.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/checkout/session", h.Create)
	r.PUT("/checkout/session", h.Express)
}

type createRequest struct {
	Items         []CartItem `json:"items"`
	CustomerEmail string     `json:"customerEmail"`
	SuccessURL    string     `json:"successUrl"`
	CancelURL     string     `json:"cancelUrl"`
}

// Create handles POST /checkout/session.
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON", nil)
		return
	}
	h.create(c, req)
}

type expressRequest struct {
	Item          CartItem `json:"item"`
	CustomerEmail string   `json:"customerEmail"`
	SuccessURL    string   `json:"successUrl"`
	CancelURL     string   `json:"cancelUrl"`
}

// Express handles PUT /checkout/session, the single-item variant.
func (h *Handler) Express(c *gin.Context) {
	var req expressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON", nil)
		return
	}
	if req.Item.Quantity == 0 {
		req.Item.Quantity = 1
	}
	h.create(c, createRequest{
		Items:         []CartItem{req.Item},
		CustomerEmail: req.CustomerEmail,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
	})
}

func (h *Handler) create(c *gin.Context, req createRequest) {
	userID := ""
	if !middleware.IsGuest(c) {
		userID = middleware.UserIDFromContext(c)
	}

	result, err := h.Service.Create(c.Request.Context(), Request{
		Items:         req.Items,
		CustomerEmail: req.CustomerEmail,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
		SessionID:     middleware.SessionIDFromContext(c),
		UserID:        userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusServiceUnavailable, "PAYMENTS_NOT_CONFIGURED", "payment gateway is not configured", nil)
		case errors.Is(err, ErrEmptyCart):
			respond.Error(c, http.StatusBadRequest, "EMPTY_CART", "cart must contain at least one item", nil)
		case errors.Is(err, ErrBadItem):
			respond.Error(c, http.StatusBadRequest, "INVALID_ITEM", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "CHECKOUT_FAILED", "could not create checkout session", nil)
		}
		return
	}

	respond.OK(c, result)
}

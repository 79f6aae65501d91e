package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/shared/server/middleware"
	"storefront-backend/internal/shared/server/respond"
)

// Handler exposes profile and address book endpoints. All routes require
// a logged-in user.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/profile", h.GetProfile)
	r.PUT("/profile", h.UpdateProfile)
	r.GET("/profile/addresses", h.ListAddresses)
	r.POST("/profile/addresses", h.CreateAddress)
	r.PUT("/profile/addresses/:id", h.UpdateAddress)
	r.DELETE("/profile/addresses/:id", h.DeleteAddress)
	r.POST("/profile/addresses/:id/default", h.SetDefaultAddress)
}

// GetProfile handles GET /profile.
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.Service.Get(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "PROFILE_LOAD_FAILED", "could not load profile", nil)
		return
	}
	respond.OK(c, profile)
}

type profileRequest struct {
	DisplayName      string   `json:"displayName"`
	StylePersonality string   `json:"stylePersonality"`
	PreferredColors  []string `json:"preferredColors"`
	PreferredSizes   []string `json:"preferredSizes"`
}

// UpdateProfile handles PUT /profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON", nil)
		return
	}
	profile, err := h.Service.Update(c.Request.Context(), Profile{
		UserID:           middleware.UserIDFromContext(c),
		DisplayName:      req.DisplayName,
		StylePersonality: req.StylePersonality,
		PreferredColors:  req.PreferredColors,
		PreferredSizes:   req.PreferredSizes,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "PROFILE_SAVE_FAILED", "could not save profile", nil)
		return
	}
	respond.OK(c, profile)
}

// ListAddresses handles GET /profile/addresses.
func (h *Handler) ListAddresses(c *gin.Context) {
	addresses, err := h.Service.Addresses(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "ADDRESS_LOAD_FAILED", "could not load addresses", nil)
		return
	}
	respond.OK(c, gin.H{"addresses": addresses})
}

type addressRequest struct {
	Label      string `json:"label"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (r addressRequest) toAddress(userID, id string) Address {
	return Address{
		ID:         id,
		UserID:     userID,
		Label:      r.Label,
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		Region:     r.Region,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// CreateAddress handles POST /profile/addresses.
func (h *Handler) CreateAddress(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON", nil)
		return
	}
	address, err := h.Service.AddAddress(c.Request.Context(), req.toAddress(middleware.UserIDFromContext(c), ""))
	if err != nil {
		respondAddressError(c, err)
		return
	}
	respond.JSON(c, http.StatusCreated, address)
}

// UpdateAddress handles PUT /profile/addresses/:id.
func (h *Handler) UpdateAddress(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON", nil)
		return
	}
	address, err := h.Service.UpdateAddress(c.Request.Context(),
		req.toAddress(middleware.UserIDFromContext(c), c.Param("id")))
	if err != nil {
		respondAddressError(c, err)
		return
	}
	respond.OK(c, address)
}

// DeleteAddress handles DELETE /profile/addresses/:id.
func (h *Handler) DeleteAddress(c *gin.Context) {
	err := h.Service.RemoveAddress(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		respondAddressError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetDefaultAddress handles POST /profile/addresses/:id/default.
func (h *Handler) SetDefaultAddress(c *gin.Context) {
	err := h.Service.SetDefault(c.Request.Context(), middleware.UserIDFromContext(c), c.Param("id"))
	if err != nil {
		respondAddressError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondAddressError(c *gin.Context, err error) {
	var validation *ValidationError
	switch {
	case errors.As(err, &validation):
		respond.Error(c, http.StatusBadRequest, "INVALID_ADDRESS", validation.Error(), nil)
	case errors.Is(err, ErrAddressNotFound):
		respond.Error(c, http.StatusNotFound, "ADDRESS_NOT_FOUND", "address not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "ADDRESS_SAVE_FAILED", "could not save address", nil)
	}
}

package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the catalog service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// Register attaches catalog routes.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/products", h.search)
	r.GET("/products/:id", h.get)
}

func (h *Handler) search(c *gin.Context) {
	filters := FiltersFromQuery(c.Request.URL.Query())

	result, err := h.Svc.Search(c.Request.Context(), filters)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to search products", nil)
		return
	}

	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) get(c *gin.Context) {
	productID := c.Param("id")
	c.Set("productId", productID)

	product, err := h.Svc.Get(c.Request.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "product not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch product", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, product)
}

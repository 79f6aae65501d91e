package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/shared/server/middleware"
	"storefront-backend/internal/shared/server/respond"
)

// Handler exposes the current-user endpoint.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/me", h.Me)
}

// Me handles GET /me for a logged-in user.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.Service.Get(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "USER_LOAD_FAILED", "could not load user", nil)
		return
	}
	respond.OK(c, user)
}

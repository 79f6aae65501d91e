package images

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/shared/server/respond"
	"storefront-backend/internal/shared/storage/object"
)

// Handler exposes the admin bucket utilities. All routes require the
// admin claim.
type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/admin/images", h.List)
	r.POST("/admin/images/migrate", h.Migrate)
}

// List handles GET /admin/images?bucket=...&prefix=...
func (h *Handler) List(c *gin.Context) {
	bucket := c.Query("bucket")
	if bucket == "" {
		respond.Error(c, http.StatusBadRequest, "MISSING_BUCKET", "bucket is required", nil)
		return
	}
	objects, err := h.Service.List(c.Request.Context(), bucket, c.Query("prefix"))
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "BUCKET_NOT_FOUND", "bucket not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "LIST_FAILED", "could not list objects", nil)
		return
	}
	items := make([]gin.H, 0, len(objects))
	for _, info := range objects {
		items = append(items, gin.H{
			"key":          info.Key,
			"sizeBytes":    info.SizeBytes,
			"lastModified": info.LastModified,
		})
	}
	respond.OK(c, gin.H{"objects": items, "count": len(items)})
}

type migrateRequest struct {
	SrcBucket       string `json:"srcBucket"`
	DstBucket       string `json:"dstBucket"`
	Prefix          string `json:"prefix"`
	BatchSize       int    `json:"batchSize"`
	ContinueOnError *bool  `json:"continueOnError"`
	DeleteSource    bool   `json:"deleteSource"`
}

// Migrate handles POST /admin/images/migrate.
func (h *Handler) Migrate(c *gin.Context) {
	var req migrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON", nil)
		return
	}
	if req.SrcBucket == "" || req.DstBucket == "" {
		respond.Error(c, http.StatusBadRequest, "MISSING_BUCKET", "srcBucket and dstBucket are required", nil)
		return
	}

	continueOnError := true
	if req.ContinueOnError != nil {
		continueOnError = *req.ContinueOnError
	}

	result, err := h.Service.Migrate(c.Request.Context(), MigrateOptions{
		SrcBucket:       req.SrcBucket,
		DstBucket:       req.DstBucket,
		Prefix:          req.Prefix,
		BatchSize:       req.BatchSize,
		ContinueOnError: continueOnError,
		DeleteSource:    req.DeleteSource,
	})
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "BUCKET_NOT_FOUND", "source bucket not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "MIGRATE_FAILED", err.Error(), gin.H{"partial": result})
		return
	}
	respond.OK(c, result)
}

package timesheet

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc     *Service
	deliver Deliverer
}

// RegisterRoutes mounts the manual export endpoints (admin only; the
// caller wraps r with auth middleware).
func RegisterRoutes(r gin.IRoutes, svc *Service, deliver Deliverer) {
	h := &Handler{svc: svc, deliver: deliver}
	r.POST("/reports/export", h.Export)
	r.GET("/reports/export/file", h.Download)
}

// POST /reports/export — compile now and push to the spool. 204 when the
// period is empty.
func (h *Handler) Export(c *gin.Context) {
	art, err := h.svc.Generate(c.Request.Context())
	if errors.Is(err, ErrNoData) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report generation failed"})
		return
	}
	if err := h.deliver.Deliver(art); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report delivery failed"})
		return
	}
	c.JSON(http.StatusOK, art)
}

// GET /reports/export/file — compile now and stream the workbook.
func (h *Handler) Download(c *gin.Context) {
	art, err := h.svc.Generate(c.Request.Context())
	if errors.Is(err, ErrNoData) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report generation failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+art.Filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", art.Data)
}

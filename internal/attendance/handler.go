package attendance

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

// RegisterRoutes mounts the administrative record endpoints. The caller is
// expected to wrap r with auth middleware; punches themselves only ever
// arrive through the dialog engine.
func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}
	r.GET("/attendances", h.List)
	r.DELETE("/attendances", h.ClearAll)
}

// GET /attendances
func (h *Handler) List(c *gin.Context) {
	recs, err := h.svc.Records(c.Request.Context())
	if err != nil {
		c.JSON(ToHTTPStatus(err), gin.H{"error": "failed to list records"})
		return
	}
	out := make([]RecordResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toDTO())
	}
	c.JSON(http.StatusOK, ListResponse{Records: out, Total: len(out)})
}

// DELETE /attendances — bulk wipe, records only.
func (h *Handler) ClearAll(c *gin.Context) {
	if err := h.svc.ClearRecords(c.Request.Context()); err != nil {
		c.JSON(ToHTTPStatus(err), gin.H{"error": "failed to clear records"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "records cleared"})
}

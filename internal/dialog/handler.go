package dialog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabel-backend/internal/attendance"
)

type Handler struct{ engine *Engine }

// RegisterRoutes mounts the gateway-facing event endpoint. The messaging
// transport (bot process) posts every user interaction here and renders
// the returned template.
func RegisterRoutes(r gin.IRoutes, engine *Engine) {
	h := &Handler{engine: engine}
	r.POST("/dialog/events", h.PostEvent)
}

type EventRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Kind   string `json:"kind" binding:"required"`
	Text   string `json:"text,omitempty"`
	Date   string `json:"date,omitempty"`
}

var eventKinds = map[string]EventKind{
	string(EvStart):    EvStart,
	string(EvCheckIn):  EvCheckIn,
	string(EvCheckOut): EvCheckOut,
	string(EvCancel):   EvCancel,
	string(EvWhoAmI):   EvWhoAmI,
	string(EvCalendar): EvCalendar,
	string(EvText):     EvText,
}

// POST /dialog/events
func (h *Handler) PostEvent(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json or missing required fields"})
		return
	}
	kind, ok := eventKinds[req.Kind]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown event kind"})
		return
	}

	rep, err := h.engine.Handle(c.Request.Context(), req.UserID, Event{Kind: kind, Text: req.Text, Date: req.Date})
	if err != nil {
		c.JSON(attendance.ToHTTPStatus(err), gin.H{"error": "punch not saved, try again"})
		return
	}
	c.JSON(http.StatusOK, rep)
}

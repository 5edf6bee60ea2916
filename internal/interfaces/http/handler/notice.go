package handler

import (
	"github.com/expensetracker/backend/internal/infrastructure/notice"
	"github.com/gin-gonic/gin"
)

// NoticeHandler serves pending one-shot notices
type NoticeHandler struct {
	BaseHandler
	store notice.Store
}

// NewNoticeHandler creates a new NoticeHandler
func NewNoticeHandler(store notice.Store) *NoticeHandler {
	return &NoticeHandler{store: store}
}

// RegisterRoutes registers notice routes
func (h *NoticeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notices", h.Pop)
}

// Pop returns the caller's pending notice and clears it. Sessions are
// identified by the X-Session-ID header; without one there is never a
// pending notice.
func (h *NoticeHandler) Pop(c *gin.Context) {
	sessionID := c.GetHeader("X-Session-ID")
	if sessionID == "" {
		h.Success(c, gin.H{"notice": nil})
		return
	}

	n, err := h.store.Pop(c.Request.Context(), sessionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"notice": n})
}

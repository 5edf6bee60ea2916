package handler

import (
	"github.com/expensetracker/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the spending overview
type DashboardHandler struct {
	BaseHandler
	dashboardService *report.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *report.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Overview)
}

// Overview returns the current month's totals, category breakdown and
// trailing monthly trend
func (h *DashboardHandler) Overview(c *gin.Context) {
	dashboard, err := h.dashboardService.Overview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dashboard)
}

package handler

import (
	"hotel-frontdesk-backend/internal/service"
	"hotel-frontdesk-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	clock            Clock
}

func NewDashboardHandler(dashboardService *service.DashboardService, clock Clock) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		clock:            clock,
	}
}

// Get loads the dashboard summary, rooms, recent guests and recent bookings
func (h *DashboardHandler) Get(c *gin.Context) {
	today, ok := h.clock.Today(c)
	if !ok {
		return
	}

	view, err := h.dashboardService.Load(c.Request.Context(), today)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, view)
}

package handler

import (
	"hotel-frontdesk-backend/internal/service"
	"hotel-frontdesk-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestService *service.GuestService
}

func NewGuestHandler(guestService *service.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

// List retrieves all guests newest first
func (h *GuestHandler) List(c *gin.Context) {
	guests, err := h.guestService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"guests": guests,
		"count":  len(guests),
	})
}

package handler

import (
	"net/http"

	"hotel-frontdesk-backend/internal/middleware"
	"hotel-frontdesk-backend/internal/service"
	"hotel-frontdesk-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

type SetRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List retrieves all rooms with occupancy counts
func (h *RoomHandler) List(c *gin.Context) {
	view, err := h.roomService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, view)
}

// Available retrieves the rooms open for registration
func (h *RoomHandler) Available(c *gin.Context) {
	rooms, err := h.roomService.Available(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"rooms": rooms,
		"count": len(rooms),
	})
}

// SetStatus changes a room's status (admin only)
func (h *RoomHandler) SetStatus(c *gin.Context) {
	var req SetRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, invalidRequestBody)
		return
	}

	if err := h.roomService.SetStatus(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	utils.MessageResponse(c, "Estado de la habitación actualizado.")
}

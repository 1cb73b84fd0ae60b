package handler

import (
	"net/http"

	"hotel-frontdesk-backend/internal/middleware"
	"hotel-frontdesk-backend/internal/service"
	"hotel-frontdesk-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService *service.BookingService
	clock          Clock
}

func NewBookingHandler(bookingService *service.BookingService, clock Clock) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		clock:          clock,
	}
}

// List returns every booking with its room and guest
func (h *BookingHandler) List(c *gin.Context) {
	today, ok := h.clock.Today(c)
	if !ok {
		return
	}

	view, err := h.bookingService.List(c.Request.Context(), today)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, view)
}

// Create stores a new booking
func (h *BookingHandler) Create(c *gin.Context) {
	var req service.CreateBookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, invalidRequestBody)
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.CreatedResponse(c, booking)
}

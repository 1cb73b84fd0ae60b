package handler

import (
	"net/http"

	"hotel-frontdesk-backend/internal/middleware"
	"hotel-frontdesk-backend/internal/registration"
	"hotel-frontdesk-backend/internal/service"
	"hotel-frontdesk-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	workflow    *registration.Workflow
	roomService *service.RoomService
}

func NewRegistrationHandler(workflow *registration.Workflow, roomService *service.RoomService) *RegistrationHandler {
	return &RegistrationHandler{
		workflow:    workflow,
		roomService: roomService,
	}
}

// Register checks a walk-in guest into an available room. The response
// carries the outcome and the refreshed list of available rooms.
func (h *RegistrationHandler) Register(c *gin.Context) {
	var form registration.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, invalidRequestBody)
		return
	}

	desk := registration.NewDesk(h.workflow, h.roomService)
	desk.Form = form
	// An invalid form is answered without touching the store
	if registration.Validate(form) == "" {
		if err := desk.Load(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
	}

	out := desk.Submit(c.Request.Context(), middleware.UserID(c))

	body := gin.H{
		"success": out.State == registration.Succeeded,
		"data": gin.H{
			"outcome": out,
			"desk":    desk,
		},
	}
	switch out.State {
	case registration.Succeeded:
		c.JSON(http.StatusCreated, body)
	case registration.PartialSuccess:
		c.JSON(http.StatusAccepted, body)
	case registration.Idle:
		body["error"] = out.Message
		c.JSON(http.StatusUnprocessableEntity, body)
	case registration.Failed:
		body["error"] = out.Message
		if out.Message == registration.MsgRoomUnavailable {
			c.JSON(http.StatusConflict, body)
			return
		}
		c.JSON(http.StatusBadGateway, body)
	default:
		body["error"] = out.Message
		c.JSON(http.StatusBadGateway, body)
	}
}

package handler

import (
	"net/http"
	"time"

	"hotel-frontdesk-backend/internal/dashboard"
	"hotel-frontdesk-backend/internal/models"
	"hotel-frontdesk-backend/internal/service"
	"hotel-frontdesk-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const invalidRequestBody = "Solicitud no válida."

// respondError writes err using the status and message of its AppError
func respondError(c *gin.Context, err error) {
	appErr := service.AsAppError(err)
	if appErr.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	utils.ErrorResponse(c, appErr.StatusCode, appErr.Message)
}

// Clock resolves the hotel's "today" for a request
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

// Today reads an explicit ?today=YYYY-MM-DD, else the date now in ?tz or
// the hotel's configured zone
func (k Clock) Today(c *gin.Context) (models.Date, bool) {
	if raw := c.Query("today"); raw != "" {
		d, err := models.ParseDate(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "La fecha debe tener el formato AAAA-MM-DD.")
			return "", false
		}
		return d, true
	}

	loc := k.Location
	if tz := c.Query("tz"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Zona horaria no válida.")
			return "", false
		}
		loc = l
	}

	now := time.Now
	if k.Now != nil {
		now = k.Now
	}
	return dashboard.Today(now(), loc), true
}

// Health reports that the server is up
func Health(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"status": "ok"})
}

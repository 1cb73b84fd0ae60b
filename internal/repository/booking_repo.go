package repository

import (
	"context"
	"time"

	"hotel-frontdesk-backend/internal/models"

	"github.com/google/uuid"
)

type BookingRepository struct {
	gw Gateway
}

func NewBookingRepo(gw Gateway) *BookingRepository {
	return &BookingRepository{gw: gw}
}

// ListBookings retrieves bookings newest first. A zero limit returns all bookings.
func (r *BookingRepository) ListBookings(ctx context.Context, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.gw.Select(ctx, TableBookings, Query{Order: Desc("created_at"), Limit: limit}, &bookings)
	return bookings, err
}

// CreateBooking creates a new booking
func (r *BookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	return r.gw.Insert(ctx, TableBookings, booking)
}

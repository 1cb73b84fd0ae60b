package repository

import (
	"context"
	"errors"
	"time"

	"hotel-frontdesk-backend/internal/models"

	"github.com/google/uuid"
)

var ErrGuestNotFound = errors.New("guest not found")

type GuestRepository struct {
	gw Gateway
}

func NewGuestRepo(gw Gateway) *GuestRepository {
	return &GuestRepository{gw: gw}
}

// ListGuests retrieves guests newest first. A zero limit returns all guests.
func (r *GuestRepository) ListGuests(ctx context.Context, limit int) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.gw.Select(ctx, TableGuests, Query{Order: Desc("created_at"), Limit: limit}, &guests)
	return guests, err
}

// GetGuestsByIDs retrieves the guests with the given identifiers
func (r *GuestRepository) GetGuestsByIDs(ctx context.Context, ids []string) ([]models.Guest, error) {
	if len(ids) == 0 {
		return []models.Guest{}, nil
	}
	var guests []models.Guest
	err := r.gw.Select(ctx, TableGuests, Query{Filters: []Filter{In("id", ids)}}, &guests)
	return guests, err
}

// GetGuestByID retrieves a guest by ID
func (r *GuestRepository) GetGuestByID(ctx context.Context, id string) (*models.Guest, error) {
	var guests []models.Guest
	err := r.gw.Select(ctx, TableGuests, Query{Filters: []Filter{Eq("id", id)}, Limit: 1}, &guests)
	if err != nil {
		return nil, err
	}
	if len(guests) == 0 {
		return nil, ErrGuestNotFound
	}
	return &guests[0], nil
}

// CreateGuest creates a new guest
func (r *GuestRepository) CreateGuest(ctx context.Context, guest *models.Guest) error {
	if guest.ID == "" {
		guest.ID = uuid.NewString()
	}
	if guest.CreatedAt.IsZero() {
		guest.CreatedAt = time.Now().UTC()
	}
	return r.gw.Insert(ctx, TableGuests, guest)
}

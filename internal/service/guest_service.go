package service

import (
	"context"

	"hotel-frontdesk-backend/internal/dashboard"
	"hotel-frontdesk-backend/internal/repository"

	"go.uber.org/zap"
)

const guestsLoadFailed = "No se pudieron cargar los huéspedes."

type GuestService struct {
	guestRepo *repository.GuestRepository
	log       *zap.Logger
}

func NewGuestService(guestRepo *repository.GuestRepository, log *zap.Logger) *GuestService {
	return &GuestService{guestRepo: guestRepo, log: log}
}

// List returns every guest newest first
func (s *GuestService) List(ctx context.Context) ([]dashboard.GuestRow, error) {
	guests, err := s.guestRepo.ListGuests(ctx, 0)
	if err != nil {
		s.log.Error("guests load failed", zap.Error(err))
		return nil, FetchFailure(guestsLoadFailed, err)
	}
	return dashboard.GuestRows(guests), nil
}

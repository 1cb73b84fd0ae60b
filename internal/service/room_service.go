package service

import (
	"context"
	"errors"
	"fmt"

	"hotel-frontdesk-backend/internal/dashboard"
	"hotel-frontdesk-backend/internal/models"
	"hotel-frontdesk-backend/internal/repository"

	"go.uber.org/zap"
)

const (
	roomsLoadFailed          = "No se pudieron cargar las habitaciones."
	availableRoomsLoadFailed = "No se pudieron cargar las habitaciones disponibles."
)

// RoomsView is the rooms page
type RoomsView struct {
	Counts dashboard.RoomCounts `json:"counts"`
	Rooms  []dashboard.RoomRow  `json:"rooms"`
}

type RoomService struct {
	roomRepo  *repository.RoomRepository
	auditRepo *repository.AuditRepository
	log       *zap.Logger
}

func NewRoomService(roomRepo *repository.RoomRepository, auditRepo *repository.AuditRepository, log *zap.Logger) *RoomService {
	return &RoomService{
		roomRepo:  roomRepo,
		auditRepo: auditRepo,
		log:       log,
	}
}

// List returns every room ordered by number with occupancy counts
func (s *RoomService) List(ctx context.Context) (*RoomsView, error) {
	rooms, err := s.roomRepo.ListRooms(ctx)
	if err != nil {
		s.log.Error("rooms load failed", zap.Error(err))
		return nil, FetchFailure(roomsLoadFailed, err)
	}
	return &RoomsView{
		Counts: dashboard.ComputeRoomCounts(rooms),
		Rooms:  dashboard.RoomRows(rooms),
	}, nil
}

// Available returns the rooms a guest can be registered into
func (s *RoomService) Available(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.roomRepo.ListAvailableRooms(ctx)
	if err != nil {
		s.log.Error("available rooms load failed", zap.Error(err))
		return nil, FetchFailure(availableRoomsLoadFailed, err)
	}
	return rooms, nil
}

// SetStatus records a status change made outside registration, such as
// housekeeping marking a room clean
func (s *RoomService) SetStatus(ctx context.Context, userID, roomID, raw string) error {
	status := models.ParseRoomStatus(raw)
	if !status.Valid() {
		return invalidInput("Estado de habitación no válido.", fmt.Errorf("unknown room status %q", raw))
	}

	if err := s.roomRepo.UpdateRoomStatus(ctx, roomID, status); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return notFound("La habitación no existe.", err)
		}
		return internal("No se pudo actualizar la habitación.", err)
	}

	if err := s.auditRepo.CreateAuditLog(ctx, &userID, "room_status_changed",
		fmt.Sprintf("Room %s set to %s", roomID, status)); err != nil {
		s.log.Warn("failed to write audit log", zap.String("action", "room_status_changed"), zap.Error(err))
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"hotel-frontdesk-backend/internal/models"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room is no longer available")
)

type RoomRepository struct {
	gw Gateway
}

func NewRoomRepo(gw Gateway) *RoomRepository {
	return &RoomRepository{gw: gw}
}

// ListRooms retrieves all rooms ordered by display number
func (r *RoomRepository) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := r.gw.Select(ctx, TableRooms, Query{Order: Asc("number")}, &rooms)
	return rooms, err
}

// ListAvailableRooms retrieves rooms whose status parses as available.
// Stored values are matched after trimming and case folding, the same way
// counts and labels read them.
func (r *RoomRepository) ListAvailableRooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := r.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.CanonicalStatus() == models.RoomAvailable {
			available = append(available, room)
		}
	}
	return available, nil
}

// GetRoomsByIDs retrieves the rooms with the given identifiers
func (r *RoomRepository) GetRoomsByIDs(ctx context.Context, ids []string) ([]models.Room, error) {
	if len(ids) == 0 {
		return []models.Room{}, nil
	}
	var rooms []models.Room
	err := r.gw.Select(ctx, TableRooms, Query{Filters: []Filter{In("id", ids)}}, &rooms)
	return rooms, err
}

// GetRoomByID retrieves a room by ID
func (r *RoomRepository) GetRoomByID(ctx context.Context, id string) (*models.Room, error) {
	var rooms []models.Room
	err := r.gw.Select(ctx, TableRooms, Query{Filters: []Filter{Eq("id", id)}, Limit: 1}, &rooms)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, ErrRoomNotFound
	}
	return &rooms[0], nil
}

// CreateRoom creates a new room. Recognized statuses are stored in canonical form.
func (r *RoomRepository) CreateRoom(ctx context.Context, room *models.Room) error {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	switch status := room.CanonicalStatus(); {
	case room.Status == "":
		room.Status = string(models.RoomAvailable)
	case status.Valid():
		room.Status = string(status)
	}
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now().UTC()
	}
	return r.gw.Insert(ctx, TableRooms, room)
}

// UpdateRoomStatus sets the status of a room
func (r *RoomRepository) UpdateRoomStatus(ctx context.Context, id string, status models.RoomStatus) error {
	n, err := r.gw.Update(ctx, TableRooms, []Filter{Eq("id", id)}, map[string]any{"status": string(status)})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// NormalizeRoomStatuses rewrites recognized statuses that are not stored in
// canonical form, such as "Disponible" or " available". Unknown values are left
// alone. It returns the number of rooms rewritten.
func (r *RoomRepository) NormalizeRoomStatuses(ctx context.Context) (int64, error) {
	rooms, err := r.ListRooms(ctx)
	if err != nil {
		return 0, err
	}
	var rewritten int64
	for _, room := range rooms {
		status := room.CanonicalStatus()
		if !status.Valid() || room.Status == string(status) {
			continue
		}
		n, err := r.gw.Update(ctx, TableRooms, []Filter{
			Eq("id", room.ID),
			Eq("status", room.Status),
		}, map[string]any{"status": string(status)})
		if err != nil {
			return rewritten, err
		}
		rewritten += n
	}
	return rewritten, nil
}

// OccupyRoom flips an available room to occupied. It fails with
// ErrRoomUnavailable when the room does not exist or is no longer available.
// The update only applies while the stored status still equals the value read,
// so a concurrent change makes it match no rows.
func (r *RoomRepository) OccupyRoom(ctx context.Context, id string) error {
	room, err := r.GetRoomByID(ctx, id)
	if errors.Is(err, ErrRoomNotFound) {
		return ErrRoomUnavailable
	}
	if err != nil {
		return err
	}
	if room.CanonicalStatus() != models.RoomAvailable {
		return ErrRoomUnavailable
	}

	n, err := r.gw.Update(ctx, TableRooms, []Filter{
		Eq("id", id),
		Eq("status", room.Status),
	}, map[string]any{"status": string(models.RoomOccupied)})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRoomUnavailable
	}
	return nil
}

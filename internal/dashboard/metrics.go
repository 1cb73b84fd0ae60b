package dashboard

import (
	"time"

	"hotel-frontdesk-backend/internal/models"
)

// RoomCounts holds occupancy counters over a room snapshot
type RoomCounts struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Occupied  int `json:"occupied"`
}

// DailyMovement holds today's check-in and check-out counts
type DailyMovement struct {
	CheckIns  int `json:"check_ins"`
	CheckOuts int `json:"check_outs"`
}

// Summary is the derived dashboard header. It is never persisted.
type Summary struct {
	Rooms        RoomCounts    `json:"rooms"`
	RecentGuests int           `json:"recent_guests"`
	Movement     DailyMovement `json:"movement"`
	Today        models.Date   `json:"today"`
}

// ComputeRoomCounts counts rooms by canonical status. Rooms in any other
// status (cleaning, unknown) only count toward Total.
func ComputeRoomCounts(rooms []models.Room) RoomCounts {
	counts := RoomCounts{Total: len(rooms)}
	for _, r := range rooms {
		switch r.CanonicalStatus() {
		case models.RoomAvailable:
			counts.Available++
		case models.RoomOccupied:
			counts.Occupied++
		}
	}
	return counts
}

// ComputeDailyMovement counts bookings whose check-in or check-out equals today.
// Comparison is literal: "2024-6-1" never matches "2024-06-01".
func ComputeDailyMovement(bookings []models.Booking, today models.Date) DailyMovement {
	var m DailyMovement
	for _, b := range bookings {
		if b.CheckIn == today {
			m.CheckIns++
		}
		if b.CheckOut == today {
			m.CheckOuts++
		}
	}
	return m
}

// Summarize derives the dashboard header from one fetched snapshot
func Summarize(rooms []models.Room, bookings []models.Booking, guests []models.Guest, today models.Date) Summary {
	return Summary{
		Rooms:        ComputeRoomCounts(rooms),
		RecentGuests: len(guests),
		Movement:     ComputeDailyMovement(bookings, today),
		Today:        today,
	}
}

// Today returns the calendar date of now in loc
func Today(now time.Time, loc *time.Location) models.Date {
	if loc == nil {
		loc = time.Local
	}
	return models.DateOf(now.In(loc))
}

// Package dashboard merges independently fetched rooms, guests and bookings
// into view rows and derives the front-desk summary counters.
// Everything here is pure computation over already-fetched rows and never fails.
package dashboard

import "hotel-frontdesk-backend/internal/models"

// JoinedBooking is a booking with its room and guest resolved.
// Room or Guest is nil when the reference did not resolve.
type JoinedBooking struct {
	models.Booking
	Room  *models.Room  `json:"room,omitempty"`
	Guest *models.Guest `json:"guest,omitempty"`
}

// JoinBookings resolves each booking's room and guest by identifier.
// The output has the same length and order as bookings. Duplicate room or
// guest identifiers resolve to the last occurrence.
func JoinBookings(bookings []models.Booking, rooms []models.Room, guests []models.Guest) []JoinedBooking {
	roomsByID := make(map[string]*models.Room, len(rooms))
	for i := range rooms {
		roomsByID[rooms[i].ID] = &rooms[i]
	}

	guestsByID := make(map[string]*models.Guest, len(guests))
	for i := range guests {
		guestsByID[guests[i].ID] = &guests[i]
	}

	joined := make([]JoinedBooking, len(bookings))
	for i, b := range bookings {
		joined[i] = JoinedBooking{
			Booking: b,
			Room:    roomsByID[b.RoomID],
			Guest:   guestsByID[b.GuestID],
		}
	}
	return joined
}

// ReferencedIDs returns the distinct room and guest identifiers referenced by
// bookings, in first-seen order. Used to fetch only the rows a join needs.
func ReferencedIDs(bookings []models.Booking) (roomIDs, guestIDs []string) {
	seenRooms := make(map[string]struct{}, len(bookings))
	seenGuests := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if _, ok := seenRooms[b.RoomID]; !ok {
			seenRooms[b.RoomID] = struct{}{}
			roomIDs = append(roomIDs, b.RoomID)
		}
		if _, ok := seenGuests[b.GuestID]; !ok {
			seenGuests[b.GuestID] = struct{}{}
			guestIDs = append(guestIDs, b.GuestID)
		}
	}
	return roomIDs, guestIDs
}

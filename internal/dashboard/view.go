package dashboard

import (
	"fmt"

	"hotel-frontdesk-backend/internal/models"
)

// Placeholders shown for absent optional data
const (
	NoContactLabel = "Sin datos de contacto"
	EmptyLabel     = "—"
)

// Floor is the two-floor heuristic derived from a room number
type Floor string

const (
	FirstFloor  Floor = "first"
	SecondFloor Floor = "second"
)

// Label returns the display name of the floor
func (f Floor) Label() string {
	if f == FirstFloor {
		return "Primer piso"
	}
	return "Segundo piso"
}

// ClassifyFloor puts numbers starting with '0' or '1' on the first floor and
// everything else, including the empty string, on the second.
func ClassifyFloor(roomNumber string) Floor {
	if roomNumber != "" && (roomNumber[0] == '0' || roomNumber[0] == '1') {
		return FirstFloor
	}
	return SecondFloor
}

// RoomRow is a room prepared for the rooms table
type RoomRow struct {
	models.Room
	StatusLabel string `json:"status_label"`
	Floor       Floor  `json:"floor"`
	FloorLabel  string `json:"floor_label"`
	PriceLabel  string `json:"price_label"`
}

// GuestRow is a guest prepared for the guests table
type GuestRow struct {
	models.Guest
	Contact  string `json:"contact"`
	Document string `json:"document"`
}

// BookingRow is a joined booking prepared for the bookings table
type BookingRow struct {
	JoinedBooking
	GuestName   string `json:"guest_name"`
	RoomLabel   string `json:"room_label"`
	Dates       string `json:"dates"`
	StatusLabel string `json:"status_label"`
}

// RoomRows builds display rows preserving input order
func RoomRows(rooms []models.Room) []RoomRow {
	rows := make([]RoomRow, len(rooms))
	for i, r := range rooms {
		floor := ClassifyFloor(r.Number)
		rows[i] = RoomRow{
			Room:        r,
			StatusLabel: models.RoomStatusLabel(r.Status),
			Floor:       floor,
			FloorLabel:  floor.Label(),
			PriceLabel:  fmt.Sprintf("$%.2f", r.PricePerNight),
		}
	}
	return rows
}

// GuestRows builds display rows preserving input order
func GuestRows(guests []models.Guest) []GuestRow {
	rows := make([]GuestRow, len(guests))
	for i, g := range guests {
		rows[i] = GuestRow{
			Guest:    g,
			Contact:  firstNonEmpty(NoContactLabel, g.Email, g.Phone),
			Document: firstNonEmpty(EmptyLabel, g.DocumentID),
		}
	}
	return rows
}

// BookingRows builds display rows. An unresolved room shows its raw identifier
// and an unresolved guest shows EmptyLabel.
func BookingRows(joined []JoinedBooking) []BookingRow {
	rows := make([]BookingRow, len(joined))
	for i, jb := range joined {
		row := BookingRow{
			JoinedBooking: jb,
			GuestName:     EmptyLabel,
			RoomLabel:     jb.RoomID,
			Dates:         fmt.Sprintf("%s → %s", jb.CheckIn, jb.CheckOut),
			StatusLabel:   models.BookingStatusLabel(jb.Status),
		}
		if jb.Guest != nil {
			row.GuestName = jb.Guest.FullName
		}
		if jb.Room != nil {
			row.RoomLabel = "Hab. " + jb.Room.Number
		}
		rows[i] = row
	}
	return rows
}

func firstNonEmpty(fallback string, values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return fallback
}

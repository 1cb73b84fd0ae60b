package models

import "strings"

// RoomStatus is the canonical variant of a room's stored status
type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomOccupied  RoomStatus = "occupied"
	RoomCleaning  RoomStatus = "cleaning"
	RoomUnknown   RoomStatus = "unknown"
)

// roomStatusAliases lists every raw value accepted for each variant.
// Keys are lower-cased and trimmed.
var roomStatusAliases = map[string]RoomStatus{
	"available":  RoomAvailable,
	"disponible": RoomAvailable,
	"occupied":   RoomOccupied,
	"ocupada":    RoomOccupied,
	"ocupado":    RoomOccupied,
	"cleaning":   RoomCleaning,
	"limpieza":   RoomCleaning,
}

var roomStatusLabels = map[RoomStatus]string{
	RoomAvailable: "Disponible",
	RoomOccupied:  "Ocupada",
	RoomCleaning:  "Limpieza",
}

// ParseRoomStatus normalizes a raw status string. Unrecognized values map to RoomUnknown.
func ParseRoomStatus(raw string) RoomStatus {
	if s, ok := roomStatusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return RoomUnknown
}

// RoomStatusLabel returns the display label for a raw status,
// falling back to the raw value when it is not recognized.
func RoomStatusLabel(raw string) string {
	if label, ok := roomStatusLabels[ParseRoomStatus(raw)]; ok {
		return label
	}
	return raw
}

// Valid reports whether s is one of the storable variants
func (s RoomStatus) Valid() bool {
	return s == RoomAvailable || s == RoomOccupied || s == RoomCleaning
}

// BookingStatus is the canonical variant of a booking's stored status
type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingUnknown   BookingStatus = "unknown"
)

var bookingStatusAliases = map[string]BookingStatus{
	"active":     BookingActive,
	"activa":     BookingActive,
	"completed":  BookingCompleted,
	"completada": BookingCompleted,
	"cancelled":  BookingCancelled,
	"canceled":   BookingCancelled,
	"cancelada":  BookingCancelled,
}

var bookingStatusLabels = map[BookingStatus]string{
	BookingActive:    "Activa",
	BookingCompleted: "Completada",
	BookingCancelled: "Cancelada",
}

// ParseBookingStatus normalizes a raw booking status. Unrecognized values map to BookingUnknown.
func ParseBookingStatus(raw string) BookingStatus {
	if s, ok := bookingStatusAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return BookingUnknown
}

// BookingStatusLabel returns the display label for a raw booking status
func BookingStatusLabel(raw string) string {
	if label, ok := bookingStatusLabels[ParseBookingStatus(raw)]; ok {
		return label
	}
	return raw
}

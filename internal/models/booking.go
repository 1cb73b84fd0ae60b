package models

import "time"

// Booking represents the bookings table
// CheckIn and CheckOut are calendar dates kept in their YYYY-MM-DD string form
type Booking struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	RoomID    string    `gorm:"size:36;not null;index" json:"room_id"`
	GuestID   string    `gorm:"size:36;not null;index" json:"guest_id"`
	CheckIn   Date      `gorm:"type:char(10);not null" json:"check_in"`
	CheckOut  Date      `gorm:"type:char(10);not null" json:"check_out"`
	Status    string    `gorm:"size:30;not null;default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for Booking model
func (Booking) TableName() string {
	return "bookings"
}

// CanonicalStatus maps the raw stored status onto a BookingStatus variant
func (b Booking) CanonicalStatus() BookingStatus {
	return ParseBookingStatus(b.Status)
}

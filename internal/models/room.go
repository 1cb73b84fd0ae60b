package models

import "time"

// Room represents the rooms table
type Room struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Number        string    `gorm:"size:20;not null;uniqueIndex" json:"number"`
	Type          string    `gorm:"size:100" json:"type"`
	PricePerNight float64   `gorm:"not null;default:0" json:"price_per_night"`
	Status        string    `gorm:"size:30;not null;default:'available';index" json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}

// CanonicalStatus maps the raw stored status onto a RoomStatus variant
func (r Room) CanonicalStatus() RoomStatus {
	return ParseRoomStatus(r.Status)
}

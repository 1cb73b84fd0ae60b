package models

import "time"

// Guest represents the guests table
// Contact fields are optional and stored as NULL when left blank
type Guest struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	FullName   string    `gorm:"size:255;not null" json:"full_name"`
	Email      *string   `gorm:"size:255" json:"email"`
	Phone      *string   `gorm:"size:50" json:"phone"`
	DocumentID *string   `gorm:"size:100" json:"document_id"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for Guest model
func (Guest) TableName() string {
	return "guests"
}

package models

import "time"

// Staff roles
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// StaffUser represents the staff_users table
// Front-desk accounts that sign in with email and password
type StaffUser struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"password_hash"`
	Role         string    `gorm:"size:20;not null;default:'staff'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for StaffUser model
func (StaffUser) TableName() string {
	return "staff_users"
}

// RefreshToken represents the refresh_tokens table
type RefreshToken struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	TokenHash string    `gorm:"not null;size:255;index" json:"token_hash"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

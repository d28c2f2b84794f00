package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:64;not null" json:"-"`

	Name    string `gorm:"size:100" json:"name"`
	Email   string `gorm:"size:100;uniqueIndex" json:"email"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	IsAdmin bool `gorm:"default:false" json:"is_admin"`

	AuthTokens []AuthToken `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

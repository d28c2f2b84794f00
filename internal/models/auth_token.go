package models

import "time"

// AuthToken é o registro servidor da sessão "lembrar de mim". O valor que
// viaja no cookie é assinado por HMAC; aqui fica só o token aleatório.
type AuthToken struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	Token string `gorm:"size:64;uniqueIndex;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}

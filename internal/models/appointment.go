package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID é nulo para agendamentos lançados manualmente pelo admin.
	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Date em YYYY-MM-DD e Time em HH:MM, como o cliente envia.
	Date string `gorm:"size:10;not null;index" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;default:'novo'" json:"status"`

	Notes     string  `gorm:"type:text" json:"notes"`
	Address   string  `gorm:"size:255" json:"address"`
	Price     float64 `json:"price"`
	ImagePath string  `gorm:"size:255" json:"image_path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

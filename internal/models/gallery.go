package models

import "time"

// Gallery é um par antes/depois exibido no site público. Só há inserção
// pelo admin; não existe edição.
type Gallery struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BeforePath string `gorm:"size:255;not null" json:"before_path"`
	AfterPath  string `gorm:"size:255;not null" json:"after_path"`

	ThumbBeforePath string `gorm:"size:255" json:"thumb_before_path"`
	ThumbAfterPath  string `gorm:"size:255" json:"thumb_after_path"`

	Caption string `gorm:"type:text" json:"caption"`

	CreatedAt time.Time `json:"created_at"`
}

package models

// ScheduleConfig limita quantos agendamentos cabem em cada dia da semana.
// Weekday segue a convenção ISO: segunda=0 .. domingo=6.
// MaxAppointments zero significa sem limite.
type ScheduleConfig struct {
	// autoIncrement:false impede o GORM de tratar a segunda-feira
	// (weekday zero) como chave não preenchida.
	Weekday         int `gorm:"primaryKey;autoIncrement:false" json:"weekday"`
	MaxAppointments int `gorm:"default:5" json:"max_appointments"`
}

func (ScheduleConfig) TableName() string {
	return "config"
}

package booking

import (
	"context"
	"time"

	domain "github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/domain/booking"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/httperr"
)

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

type AvailabilityResult struct {
	Date            string `json:"date"`
	Available       bool   `json:"available"`
	MaxAppointments int    `json:"max_appointments"`
	Booked          int64  `json:"booked"`
}

// Execute responde se a data ainda aceita agendamentos. É a mesma regra
// aplicada na criação, mas sem transação: serve só de dica para o
// cliente antes de submeter.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	dateStr string,
) (*AvailabilityResult, error) {

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	maxAppointments, err := uc.repo.GetMaxAppointments(
		ctx,
		domain.ISOWeekday(date),
	)
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.CountAppointmentsOnDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	return &AvailabilityResult{
		Date:            dateStr,
		Available:       domain.HasCapacity(maxAppointments, booked),
		MaxAppointments: maxAppointments,
		Booked:          booked,
	}, nil
}

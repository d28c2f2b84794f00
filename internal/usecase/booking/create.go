package booking

import (
	"context"
	"time"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/audit"
	domain "github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/domain/booking"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/httperr"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID uint

	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM

	Address string
	Notes   string

	// OnlineDiscount aplica os 10% do pagamento online (flag de feature
	// já checada pelo handler).
	OnlineDiscount bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	svc, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	price := svc.Price
	if in.OnlineDiscount {
		price = price * 0.9
	}

	// Endereço em branco cai no endereço cadastrado do usuário.
	address := in.Address
	if address == "" {
		if user, err := uc.repo.GetUser(ctx, in.UserID); err == nil {
			address = user.Address
		}
	}

	maxAppointments, err := uc.repo.GetMaxAppointments(
		ctx,
		domain.ISOWeekday(date),
	)
	if err != nil {
		return nil, err
	}

	userID := in.UserID
	ap := &models.Appointment{
		UserID:    &userID,
		ServiceID: svc.ID,
		Date:      in.Date,
		Time:      in.Time,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
		Address:   address,
		Price:     price,
	}

	// Contagem e insert na mesma transação: duas reservas simultâneas
	// para a última vaga não passam mais juntas.
	if err := uc.repo.CreateWithCapacityCheck(ctx, ap, maxAppointments); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

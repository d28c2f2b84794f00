package booking

import (
	"context"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetActiveService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- User --------
	GetUser(
		ctx context.Context,
		userID uint,
	) (*models.User, error)

	// -------- Capacity --------
	GetMaxAppointments(
		ctx context.Context,
		weekday int,
	) (int, error)

	CountAppointmentsOnDate(
		ctx context.Context,
		date string,
	) (int64, error)

	// -------- Appointment (create) --------

	// CreateWithCapacityCheck refaz a contagem e insere dentro de uma
	// única transação, fechando a janela entre checar e gravar.
	CreateWithCapacityCheck(
		ctx context.Context,
		ap *models.Appointment,
		maxAppointments int,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read) --------
	ListAppointmentsByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)
}

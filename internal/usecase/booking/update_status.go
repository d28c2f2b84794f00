package booking

import (
	"context"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/audit"
	domain "github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/domain/booking"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/httperr"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
)

// UpdateAppointmentStatus concentra as transições feitas pelo admin:
// confirmar, rejeitar e encerrar (feito / nao_feito).
type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointmentStatus) Confirm(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.transition(ctx, adminID, appointmentID,
		domain.StatusConfirmado, domain.CanConfirm, "appointment_confirmed")
}

func (uc *UpdateAppointmentStatus) Reject(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.transition(ctx, adminID, appointmentID,
		domain.StatusRejeitado, domain.CanReject, "appointment_rejected")
}

// Finish encerra uma visita confirmada. done=true marca feito,
// done=false marca nao_feito (cliente ausente, chuva etc).
func (uc *UpdateAppointmentStatus) Finish(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	done bool,
) (*models.Appointment, error) {

	target := domain.StatusFeito
	action := "appointment_done"
	if !done {
		target = domain.StatusNaoFeito
		action = "appointment_missed"
	}

	return uc.transition(ctx, adminID, appointmentID,
		target, domain.CanFinish, action)
}

func (uc *UpdateAppointmentStatus) transition(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
	target domain.Status,
	guard func(domain.Status) error,
	action string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := guard(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	ap.Status = string(target)
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/audit"
	domain "github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/domain/booking"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/httperr"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/middleware"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
	ucbooking "github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentAdminHandler struct {
	db       *gorm.DB
	statusUC *ucbooking.UpdateAppointmentStatus
	audit    *audit.Dispatcher
}

func NewAppointmentAdminHandler(
	db *gorm.DB,
	statusUC *ucbooking.UpdateAppointmentStatus,
	auditDispatcher *audit.Dispatcher,
) *AppointmentAdminHandler {
	return &AppointmentAdminHandler{
		db:       db,
		statusUC: statusUC,
		audit:    auditDispatcher,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentAdminHandler) List(c *gin.Context) {
	q := h.db.
		Preload("User").
		Preload("Service").
		Order("date ASC, time ASC")

	if status := c.Query("status"); status != "" {
		if !domain.IsValid(domain.Status(status)) {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		q = q.Where("status = ?", status)
	}

	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, aps)
}

// ======================================================
// MANUAL CREATE
// ======================================================

type AdminCreateAppointmentRequest struct {
	UserID    *uint   `json:"user_id"`
	ServiceID uint    `json:"service_id" binding:"required"`
	Date      string  `json:"date" binding:"required"`
	Time      string  `json:"time" binding:"required"`
	Address   string  `json:"address"`
	Notes     string  `json:"notes"`
	Price     float64 `json:"price"`
}

// Create lança um agendamento manual, sem passar pelo limite diário:
// o admin decide encaixes por conta própria.
func (h *AppointmentAdminHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req AdminCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap := models.Appointment{
		UserID:    req.UserID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    string(domain.InitialStatus()),
		Address:   req.Address,
		Notes:     req.Notes,
		Price:     req.Price,
	}

	if err := h.db.Create(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_created_manually",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentAdminHandler) Confirm(c *gin.Context) {
	h.runTransition(c, func(adminID, id uint) (*models.Appointment, error) {
		return h.statusUC.Confirm(c.Request.Context(), adminID, id)
	})
}

func (h *AppointmentAdminHandler) Reject(c *gin.Context) {
	h.runTransition(c, func(adminID, id uint) (*models.Appointment, error) {
		return h.statusUC.Reject(c.Request.Context(), adminID, id)
	})
}

func (h *AppointmentAdminHandler) Done(c *gin.Context) {
	h.runTransition(c, func(adminID, id uint) (*models.Appointment, error) {
		return h.statusUC.Finish(c.Request.Context(), adminID, id, true)
	})
}

func (h *AppointmentAdminHandler) Miss(c *gin.Context) {
	h.runTransition(c, func(adminID, id uint) (*models.Appointment, error) {
		return h.statusUC.Finish(c.Request.Context(), adminID, id, false)
	})
}

func (h *AppointmentAdminHandler) runTransition(
	c *gin.Context,
	fn func(adminID, id uint) (*models.Appointment, error),
) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	ap, err := fn(adminID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
		default:
			httperr.Internal(c, "transition_failed", "Erro ao atualizar agendamento.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentAdminHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.First(&ap, id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "delete_failed", "Erro ao excluir agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/config"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/httperr"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/middleware"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/notification"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/payment"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/storage"
	ucbooking "github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db       *gorm.DB
	config   *config.Config
	createUC *ucbooking.CreateBooking
	availUC  *ucbooking.CheckAvailability
	uploads  *storage.Uploads
	mailer   *notification.Mailer
	payments *payment.MercadoPago
}

func NewBookingHandler(
	db *gorm.DB,
	cfg *config.Config,
	createUC *ucbooking.CreateBooking,
	availUC *ucbooking.CheckAvailability,
	uploads *storage.Uploads,
	mailer *notification.Mailer,
	payments *payment.MercadoPago,
) *BookingHandler {
	return &BookingHandler{
		db:       db,
		config:   cfg,
		createUC: createUC,
		availUC:  availUC,
		uploads:  uploads,
		mailer:   mailer,
		payments: payments,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
	PayOnline bool   `json:"pay_online"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		UserID:         userID,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		Time:           req.Time,
		Address:        req.Address,
		Notes:          req.Notes,
		OnlineDiscount: req.PayOnline && h.config.Flags.PagamentoOnline,
	})
	if err != nil {
		code, _ := httperr.BusinessCode(err)
		switch code {
		case "day_full":
			httperr.Conflict(c, "day_full", "Dia cheio, escolha outra data.")
		case "invalid_date", "invalid_time":
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		case "service_not_found":
			httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		}
		return
	}

	if h.mailer != nil {
		var user models.User
		if err := h.db.First(&user, userID).Error; err == nil {
			go h.mailer.NotifyNewBooking(ap, &user)
		}
	}

	resp := gin.H{"appointment": ap}
	if h.config.Flags.IntegracaoWhatsApp {
		resp["whatsapp_link"] = notification.WhatsAppLink(h.config.WhatsAppLink, ap)
	}

	c.JSON(http.StatusCreated, resp)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	result, err := h.availUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httperr.Internal(c, "availability_error", "Erro ao verificar disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ======================================================
// MY APPOINTMENTS
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var aps []models.Appointment
	h.db.
		Preload("Service").
		Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&aps)

	c.JSON(http.StatusOK, aps)
}

// ======================================================
// POOL PHOTO
// ======================================================

// UploadPhoto anexa a foto da piscina a um agendamento do próprio
// usuário.
func (h *BookingHandler) UploadPhoto(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo obrigatório.")
		return
	}

	path, err := h.uploads.Save(c, file)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidExtension) {
			httperr.BadRequest(c, "invalid_file_type", "Apenas png, jpg e jpeg são aceitos.")
			return
		}
		httperr.Internal(c, "upload_failed", "Erro ao salvar a foto.")
		return
	}

	ap.ImagePath = path
	h.db.Save(&ap)

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// ONLINE PAYMENT
// ======================================================

// PaymentLink gera o link de checkout do agendamento quando a feature
// PAGAMENTO_ONLINE está ligada.
func (h *BookingHandler) PaymentLink(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	if !h.config.Flags.PagamentoOnline || h.payments == nil {
		httperr.NotFound(c, "feature_disabled", "Pagamento online indisponível.")
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("Service").
		Where("id = ? AND user_id = ?", id, userID).
		First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	link, err := h.payments.CreatePaymentLink(c.Request.Context(), &ap)
	if err != nil {
		httperr.Internal(c, "payment_error", "Erro ao gerar link de pagamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"payment_link": link})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/httperr"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
)

// ScheduleHandler administra os limites diários de agendamento
// (uma linha por dia da semana, segunda=0 .. domingo=6).
type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	var configs []models.ScheduleConfig
	h.db.Order("weekday ASC").Find(&configs)
	c.JSON(http.StatusOK, configs)
}

type ScheduleLimitRequest struct {
	Weekday         int `json:"weekday" binding:"min=0,max=6"`
	MaxAppointments int `json:"max_appointments" binding:"min=0"`
}

// Update recebe os sete limites de uma vez, como a tela de configuração
// sempre salvou. Zero desliga o limite do dia.
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req []ScheduleLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, item := range req {
		cfg := models.ScheduleConfig{
			Weekday:         item.Weekday,
			MaxAppointments: item.MaxAppointments,
		}
		if err := h.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{"max_appointments"}),
		}).Create(&cfg).Error; err != nil {
			httperr.Internal(c, "failed_to_update_limits", "Erro ao salvar limites.")
			return
		}
	}

	var configs []models.ScheduleConfig
	h.db.Order("weekday ASC").Find(&configs)
	c.JSON(http.StatusOK, configs)
}

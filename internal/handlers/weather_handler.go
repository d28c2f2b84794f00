package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/config"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/httperr"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/weather"
)

type WeatherHandler struct {
	config *config.Config
	client *weather.Client
}

func NewWeatherHandler(cfg *config.Config, client *weather.Client) *WeatherHandler {
	return &WeatherHandler{config: cfg, client: client}
}

func (h *WeatherHandler) Get(c *gin.Context) {
	if !h.config.Flags.PrevisaoTempo || h.client == nil {
		httperr.NotFound(c, "feature_disabled", "Previsão do tempo indisponível.")
		return
	}

	report, err := h.client.Fetch(c.Request.Context())
	if err != nil {
		// Falha da API externa não pode derrubar a página: o cliente
		// recebe um erro tratável, não um stacktrace.
		httperr.Write(c, http.StatusBadGateway, "weather_unavailable", "Previsão do tempo temporariamente indisponível.")
		return
	}

	c.JSON(http.StatusOK, report)
}

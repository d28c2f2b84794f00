package notification

import (
	"fmt"
	"net/url"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
)

// WhatsAppLink monta o deep link de confirmação para o cliente,
// reaproveitando o link base configurado (wa.me/...?phone=...).
func WhatsAppLink(baseLink string, ap *models.Appointment) string {
	if baseLink == "" {
		return ""
	}

	msg := fmt.Sprintf(
		"Olá! Seu agendamento foi confirmado para %s às %s. Valor: R$ %.2f",
		formatDateBR(ap.Date), ap.Time, ap.Price,
	)

	return baseLink + "&text=" + url.QueryEscape(msg)
}

// formatDateBR converte YYYY-MM-DD para DD/MM/YYYY; data fora do
// formato volta como veio.
func formatDateBR(date string) string {
	if len(date) != 10 {
		return date
	}
	return date[8:10] + "/" + date[5:7] + "/" + date[0:4]
}

package notification

import (
	"strings"
	"testing"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
)

func TestWhatsAppLink(t *testing.T) {
	ap := &models.Appointment{
		Date:  "2026-09-07",
		Time:  "09:00",
		Price: 180,
	}

	link := WhatsAppLink("https://wa.me/5551999999999?phone=1", ap)

	if !strings.HasPrefix(link, "https://wa.me/5551999999999?phone=1&text=") {
		t.Fatalf("link fora do padrão: %s", link)
	}
	if !strings.Contains(link, "07%2F09%2F2026") {
		t.Errorf("data deveria ir em DD/MM/YYYY: %s", link)
	}
	if !strings.Contains(link, "09%3A00") {
		t.Errorf("horário ausente: %s", link)
	}
	if !strings.Contains(link, "180.00") {
		t.Errorf("valor ausente: %s", link)
	}
}

func TestWhatsAppLinkWithoutBase(t *testing.T) {
	if got := WhatsAppLink("", &models.Appointment{}); got != "" {
		t.Fatalf("sem link base deveria voltar vazio: %q", got)
	}
}

func TestFormatDateBR(t *testing.T) {
	if got := formatDateBR("2026-09-07"); got != "07/09/2026" {
		t.Errorf("formatDateBR: %q", got)
	}
	if got := formatDateBR("hoje"); got != "hoje" {
		t.Errorf("data fora do formato deveria voltar intacta: %q", got)
	}
}

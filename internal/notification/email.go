package notification

import (
	"errors"
	"fmt"

	"github.com/resendlabs/resend-go"
	"github.com/rs/zerolog/log"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
)

// Mailer envia os avisos por email via Resend. Tudo aqui é best-effort:
// falha de email nunca derruba a operação que a disparou.
type Mailer struct {
	client *resend.Client
	from   string
	to     string
}

func NewMailer(apiKey, from, to string) *Mailer {
	if apiKey == "" || to == "" {
		return nil
	}
	return &Mailer{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

// NotifyNewBooking avisa a equipe que entrou agendamento novo.
func (m *Mailer) NotifyNewBooking(ap *models.Appointment, user *models.User) {
	html := fmt.Sprintf(
		"<p>Novo agendamento #%d</p>"+
			"<p><b>Cliente:</b> %s (%s)</p>"+
			"<p><b>Data:</b> %s às %s</p>"+
			"<p><b>Endereço:</b> %s</p>"+
			"<p><b>Valor:</b> R$ %.2f</p>",
		ap.ID, user.Name, user.Phone, formatDateBR(ap.Date), ap.Time, ap.Address, ap.Price,
	)

	m.send(fmt.Sprintf("Novo agendamento #%d", ap.ID), html)
}

// ErrNotConfigured indica envio sem RESEND_API_KEY ou destinatário.
var ErrNotConfigured = errors.New("mailer não configurado")

// SendAlert é usado pelo monitor de logs. Chamável com mailer nulo
// (NewMailer devolve nil quando o email não está configurado).
func (m *Mailer) SendAlert(subject, body string) error {
	if m == nil {
		return ErrNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: "[ALERTA] " + subject,
		Text:    body,
	}

	_, err := m.client.Emails.Send(params)
	return err
}

func (m *Mailer) send(subject, html string) {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		Subject: subject,
		Html:    html,
	}

	if _, err := m.client.Emails.Send(params); err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("failed to send email")
	}
}

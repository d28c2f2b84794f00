// Package payment cria a preferência de pagamento online (Mercado Pago)
// para um agendamento, quando a feature PAGAMENTO_ONLINE está ligada.
package payment

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
)

type MercadoPago struct {
	prefs preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{
		prefs: preference.NewClient(cfg),
	}, nil
}

// CreatePaymentLink monta a preferência de checkout para o agendamento
// e devolve a URL de pagamento (init point).
func (m *MercadoPago) CreatePaymentLink(
	ctx context.Context,
	ap *models.Appointment,
) (string, error) {

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:       ap.Service.Name,
				Description: fmt.Sprintf("Limpeza de piscina em %s às %s", ap.Date, ap.Time),
				Quantity:    1,
				UnitPrice:   ap.Price,
			},
		},
		ExternalReference: fmt.Sprintf("appointment-%d", ap.ID),
	}

	resp, err := m.prefs.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.InitPoint, nil
}

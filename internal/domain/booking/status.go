package booking

import "github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/httperr"

// ===============================
// Appointment Status
// ===============================

// O vocabulário completo reúne os dois conjuntos que conviveram no
// sistema: o fluxo de triagem (novo/confirmado/rejeitado) e o fluxo de
// execução (pendente/feito/nao_feito).
type Status string

const (
	StatusNovo       Status = "novo"
	StatusPendente   Status = "pendente"
	StatusConfirmado Status = "confirmado"
	StatusFeito      Status = "feito"
	StatusNaoFeito   Status = "nao_feito"
	StatusRejeitado  Status = "rejeitado"
)

func InitialStatus() Status {
	return StatusNovo
}

func IsValid(s Status) bool {
	switch s {
	case StatusNovo, StatusPendente, StatusConfirmado,
		StatusFeito, StatusNaoFeito, StatusRejeitado:
		return true
	}
	return false
}

// ===============================
// Transições
// ===============================

// CanConfirm: só agendamentos ainda em triagem podem ser confirmados.
func CanConfirm(current Status) error {
	if current != StatusNovo && current != StatusPendente {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReject: idem confirmação.
func CanReject(current Status) error {
	if current != StatusNovo && current != StatusPendente {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanFinish cobre os dois desfechos de uma visita confirmada
// (feito / nao_feito).
func CanFinish(current Status) error {
	if current != StatusConfirmado {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

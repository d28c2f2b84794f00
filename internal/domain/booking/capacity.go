package booking

import "time"

// ISOWeekday converte para a convenção usada em todo o sistema:
// segunda=0 .. domingo=6. time.Weekday do Go começa no domingo.
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// HasCapacity aplica a regra do limite diário: zero é ilimitado; todos os
// status contam para o limite, inclusive rejeitados (comportamento
// observado em produção, mantido de propósito).
func HasCapacity(maxAppointments int, booked int64) bool {
	if maxAppointments <= 0 {
		return true
	}
	return booked < int64(maxAppointments)
}

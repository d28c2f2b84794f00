package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
)

func (e *testEnv) loginAs(t *testing.T, username string) string {
	t.Helper()

	e.do(t, http.MethodPost, "/api/auth/register", registerPayload(username), "")
	rec := e.do(t, http.MethodPost, "/api/auth/login", map[string]any{
		"username": username,
		"password": "senha123",
		"remember": true,
	}, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: %d", username, rec.Code)
	}
	return sessionCookie(t, rec).Value
}

func (e *testEnv) seedService(t *testing.T) models.Service {
	t.Helper()
	svc := models.Service{Name: "Limpeza completa", Price: 200, Active: true}
	if err := e.db.Create(&svc).Error; err != nil {
		t.Fatalf("criar serviço: %v", err)
	}
	return svc
}

func bookingBody(serviceID uint, date string) map[string]any {
	return map[string]any{
		"service_id": serviceID,
		"date":       date,
		"time":       "09:00",
	}
}

func TestCreateBookingViaAPI(t *testing.T) {
	env := newTestEnv(t)
	svc := env.seedService(t)
	cookie := env.loginAs(t, "alice")

	rec := env.do(t, http.MethodPost, "/api/me/appointments",
		bookingBody(svc.ID, "2026-09-07"), cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("criar: got %d, body %s", rec.Code, rec.Body.String())
	}

	resp := decodeJSON(t, rec)
	ap := resp["appointment"].(map[string]any)
	if ap["status"] != "novo" {
		t.Fatalf("status inicial: %v", ap["status"])
	}

	// Flag de WhatsApp ligada no ambiente de teste.
	link, ok := resp["whatsapp_link"].(string)
	if !ok || !strings.Contains(link, "text=") {
		t.Fatalf("link de whatsapp ausente ou sem mensagem: %v", resp["whatsapp_link"])
	}
}

func TestCapacityLimitOnMonday(t *testing.T) {
	env := newTestEnv(t)
	svc := env.seedService(t)
	cookie := env.loginAs(t, "alice")

	// Segunda-feira com no máximo 2 agendamentos.
	if err := env.db.Create(&models.ScheduleConfig{Weekday: 0, MaxAppointments: 2}).Error; err != nil {
		t.Fatalf("config: %v", err)
	}

	const monday = "2026-09-07"
	for i := 0; i < 2; i++ {
		rec := env.do(t, http.MethodPost, "/api/me/appointments",
			bookingBody(svc.ID, monday), cookie)
		if rec.Code != http.StatusCreated {
			t.Fatalf("agendamento %d: got %d, body %s", i+1, rec.Code, rec.Body.String())
		}
	}

	rec := env.do(t, http.MethodPost, "/api/me/appointments",
		bookingBody(svc.ID, monday), cookie)
	if rec.Code != http.StatusConflict {
		t.Fatalf("terceiro agendamento: got %d, want 409 (body %s)", rec.Code, rec.Body.String())
	}

	// A terça seguinte não herda o limite de segunda.
	rec = env.do(t, http.MethodPost, "/api/me/appointments",
		bookingBody(svc.ID, "2026-09-08"), cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("terça: got %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestAvailabilityEndpoint(t *testing.T) {
	env := newTestEnv(t)
	svc := env.seedService(t)
	cookie := env.loginAs(t, "alice")

	if err := env.db.Create(&models.ScheduleConfig{Weekday: 0, MaxAppointments: 1}).Error; err != nil {
		t.Fatalf("config: %v", err)
	}

	rec := env.do(t, http.MethodGet, "/api/public/availability?date=2026-09-07", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("availability: %d", rec.Code)
	}
	if res := decodeJSON(t, rec); res["available"] != true {
		t.Fatalf("dia vazio deveria estar disponível: %s", rec.Body.String())
	}

	env.do(t, http.MethodPost, "/api/me/appointments", bookingBody(svc.ID, "2026-09-07"), cookie)

	rec = env.do(t, http.MethodGet, "/api/public/availability?date=2026-09-07", nil, "")
	if res := decodeJSON(t, rec); res["available"] != false {
		t.Fatalf("dia lotado deveria estar indisponível: %s", rec.Body.String())
	}
}

func TestAvailabilityRejectsBadDate(t *testing.T) {
	env := newTestEnv(t)

	if rec := env.do(t, http.MethodGet, "/api/public/availability?date=07-09-2026", nil, ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("data inválida: got %d, want 400", rec.Code)
	}
	if rec := env.do(t, http.MethodGet, "/api/public/availability", nil, ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("sem data: got %d, want 400", rec.Code)
	}
}

func TestListMineOnlyOwnAppointments(t *testing.T) {
	env := newTestEnv(t)
	svc := env.seedService(t)

	aliceCookie := env.loginAs(t, "alice")
	bobCookie := env.loginAs(t, "bob")

	env.do(t, http.MethodPost, "/api/me/appointments", bookingBody(svc.ID, "2026-09-07"), aliceCookie)
	env.do(t, http.MethodPost, "/api/me/appointments", bookingBody(svc.ID, "2026-09-08"), bobCookie)

	rec := env.do(t, http.MethodGet, "/api/me/appointments", nil, bobCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("listar: %d", rec.Code)
	}
	if body := rec.Body.String(); strings.Contains(body, "2026-09-07") {
		t.Fatalf("lista de bob contém agendamento de alice: %s", body)
	}
}

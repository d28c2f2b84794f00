package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/audit"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/auth"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/config"
	infraRepo "github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/infra/repository"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/middleware"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
	ucbooking "github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/usecase/booking"
)

// testEnv monta a API contra um sqlite em memória, com as mesmas rotas
// de autenticação e agendamento do servidor real.
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	tokens *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite em memória: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Service{},
		&models.Appointment{},
		&models.ScheduleConfig{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("migrar: %v", err)
	}

	cfg := &config.Config{
		Environment:  "test",
		CookieSecret: "segredo-de-teste",
		AdminSecret:  "codigo-admin",
		WhatsAppLink: "https://wa.me/5551999999999?",
		Flags: config.FeatureFlags{
			IntegracaoWhatsApp: true,
		},
	}

	tokens := auth.NewTokenService(db, cfg.CookieSecret)
	repo := infraRepo.NewBookingGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	authHandler := NewAuthHandler(db, tokens, cfg)
	authHandler.checkEmailDomain = func(string) bool { return true }

	bookingHandler := NewBookingHandler(
		db,
		cfg,
		ucbooking.NewCreateBooking(repo, dispatcher),
		ucbooking.NewCheckAvailability(repo),
		nil,
		nil,
		nil,
	)

	r := gin.New()
	r.POST("/api/auth/register", authHandler.Register)
	r.POST("/api/auth/login", authHandler.Login)
	r.GET("/api/public/availability", bookingHandler.Availability)

	secured := r.Group("/api")
	secured.Use(middleware.AuthMiddleware(tokens, db))
	{
		secured.POST("/auth/logout", authHandler.Logout)
		secured.GET("/me", authHandler.GetMe)
		secured.GET("/me/appointments", bookingHandler.ListMine)
		secured.POST("/me/appointments", bookingHandler.Create)
	}

	return &testEnv{router: r, db: db, cfg: cfg, tokens: tokens}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: cookie})
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

// sessionCookie devolve o valor do cookie de sessão setado na resposta.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == auth.CookieName {
			return ck
		}
	}
	t.Fatal("resposta sem cookie de sessão")
	return nil
}

func registerPayload(username string) map[string]any {
	return map[string]any{
		"username": username,
		"password": "senha123",
		"name":     "Cliente de Teste",
		"email":    username + "@exemplo.com.br",
		"phone":    "51999990000",
		"address":  "Rua das Piscinas, 10",
	}
}

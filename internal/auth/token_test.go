package auth

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite em memória: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.AuthToken{}); err != nil {
		t.Fatalf("migrar: %v", err)
	}
	return db
}

func countTokens(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.AuthToken{}).Count(&n).Error; err != nil {
		t.Fatalf("contar tokens: %v", err)
	}
	return n
}

func TestIssueAndValidate(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, testSecret)
	ctx := context.Background()

	cookie, err := svc.Issue(ctx, 7, DefaultTokenTTL)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, ok := svc.Validate(ctx, cookie)
	if !ok {
		t.Fatal("token recém emitido foi rejeitado")
	}
	if userID != 7 {
		t.Fatalf("user_id: got %d, want 7", userID)
	}
}

func TestValidateExpiredTokenIsDeleted(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, testSecret)
	ctx := context.Background()

	base := time.Now()
	svc.now = func() time.Time { return base }

	cookie, err := svc.Issue(ctx, 7, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Avança o relógio além da validade.
	svc.now = func() time.Time { return base.Add(2 * time.Hour) }

	if _, ok := svc.Validate(ctx, cookie); ok {
		t.Fatal("token vencido foi aceito")
	}
	if n := countTokens(t, db); n != 0 {
		t.Fatalf("token vencido deveria ter sido removido, restam %d", n)
	}
}

func TestIssueZeroTTLExpiresImmediately(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, testSecret)
	ctx := context.Background()

	base := time.Now()
	svc.now = func() time.Time { return base }

	// ttl zero não vira o default de 10h: o token já nasce vencido.
	cookie, err := svc.Issue(ctx, 7, 0)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.now = func() time.Time { return base.Add(time.Second) }

	if _, ok := svc.Validate(ctx, cookie); ok {
		t.Fatal("token emitido com ttl zero foi aceito")
	}
	if n := countTokens(t, db); n != 0 {
		t.Fatalf("token vencido deveria ter sido removido na validação, restam %d", n)
	}
}

func TestIssueCleansUpExpiredTokens(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, testSecret)
	ctx := context.Background()

	base := time.Now()
	svc.now = func() time.Time { return base }

	if _, err := svc.Issue(ctx, 1, time.Hour); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Issue(ctx, 2, time.Hour); err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Uma nova emissão depois do vencimento varre os registros antigos,
	// inclusive os de outros usuários.
	svc.now = func() time.Time { return base.Add(3 * time.Hour) }
	if _, err := svc.Issue(ctx, 3, time.Hour); err != nil {
		t.Fatalf("issue: %v", err)
	}

	if n := countTokens(t, db); n != 1 {
		t.Fatalf("esperava só o token novo no banco, restam %d", n)
	}
}

func TestValidateUnknownToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, testSecret)

	// Cookie com assinatura válida mas sem registro correspondente.
	cookie := EncodeCookie(9, "token-que-nao-existe", testSecret)
	if _, ok := svc.Validate(context.Background(), cookie); ok {
		t.Fatal("cookie sem registro no banco foi aceito")
	}
}

func TestRevoke(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, testSecret)
	ctx := context.Background()

	cookie, err := svc.Issue(ctx, 7, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.Revoke(ctx, 7, cookie)

	if _, ok := svc.Validate(ctx, cookie); ok {
		t.Fatal("token revogado continua válido")
	}
	if n := countTokens(t, db); n != 0 {
		t.Fatalf("registro deveria ter sido apagado, restam %d", n)
	}
}

func TestRevokeIgnoresMismatchedUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewTokenService(db, testSecret)
	ctx := context.Background()

	cookie, err := svc.Issue(ctx, 7, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Outro usuário não consegue derrubar a sessão alheia.
	svc.Revoke(ctx, 8, cookie)

	if _, ok := svc.Validate(ctx, cookie); !ok {
		t.Fatal("sessão foi revogada por usuário diferente")
	}
}

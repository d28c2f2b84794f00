package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"gorm.io/gorm"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
)

// DefaultTokenTTL é a validade padrão de uma sessão persistente.
const DefaultTokenTTL = 10 * time.Hour

// TokenService emite e valida os tokens de sessão gravados no banco.
type TokenService struct {
	db     *gorm.DB
	secret string

	// now é substituível nos testes.
	now func() time.Time
}

func NewTokenService(db *gorm.DB, secret string) *TokenService {
	return &TokenService{db: db, secret: secret, now: time.Now}
}

// Issue gera um token aleatório de 32 bytes, persiste o registro com a
// validade dada e devolve o valor assinado pronto para o cookie. O ttl é
// usado como veio: zero ou negativo produz um token já vencido, que o
// Validate rejeita e remove.
// Antes de gravar, remove todos os tokens globalmente vencidos: a emissão
// é o momento de faxina (cleanup-on-write).
func (s *TokenService) Issue(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	now := s.now()

	if err := s.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&models.AuthToken{}).Error; err != nil {
		return "", err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	record := models.AuthToken{
		UserID:    userID,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return "", err
	}

	return EncodeCookie(userID, token, s.secret), nil
}

// Validate abre o cookie e confere o registro no banco. Token inexistente
// é sessão inválida; token vencido é removido na hora e também é sessão
// inválida. Só retorna o usuário quando o par confere e ainda vale.
func (s *TokenService) Validate(ctx context.Context, cookieValue string) (uint, bool) {
	userID, token, ok := DecodeCookie(cookieValue, s.secret)
	if !ok {
		return 0, false
	}

	var record models.AuthToken
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		First(&record).Error
	if err != nil {
		return 0, false
	}

	if s.now().After(record.ExpiresAt) {
		s.db.WithContext(ctx).Delete(&models.AuthToken{}, record.ID)
		return 0, false
	}

	return record.UserID, true
}

// Revoke apaga o registro específico (logout).
func (s *TokenService) Revoke(ctx context.Context, userID uint, cookieValue string) {
	id, token, ok := DecodeCookie(cookieValue, s.secret)
	if !ok || id != userID {
		return
	}

	s.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&models.AuthToken{})
}

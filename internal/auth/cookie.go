package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// CookieName é o nome do cookie de sessão persistente.
const CookieName = "auth_token"

// CookieMaxAge é o tempo de vida do cookie "lembrar de mim" (10h).
const CookieMaxAge = 36000

type cookiePayload struct {
	UserID uint   `json:"user_id"`
	Token  string `json:"token"`
}

// EncodeCookie monta o valor do cookie: "<base64-json>.<hex-hmac>".
// O HMAC-SHA256 é calculado sobre o texto base64, com o segredo estático.
func EncodeCookie(userID uint, token, secret string) string {
	raw, _ := json.Marshal(cookiePayload{UserID: userID, Token: token})
	encoded := base64.StdEncoding.EncodeToString(raw)
	return encoded + "." + signCookie(encoded, secret)
}

// DecodeCookie valida e abre o valor do cookie. Qualquer malformação ou
// assinatura inválida retorna (0, "", false) sem distinguir os casos:
// o chamador nunca sabe se o cookie foi adulterado ou só não existe.
func DecodeCookie(value, secret string) (uint, string, bool) {
	parts := strings.Split(value, ".")
	if len(parts) != 2 {
		return 0, "", false
	}

	encoded, sig := parts[0], parts[1]

	expected := signCookie(encoded, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return 0, "", false
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return 0, "", false
	}

	var payload cookiePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return 0, "", false
	}
	if payload.UserID == 0 || payload.Token == "" {
		return 0, "", false
	}

	return payload.UserID, payload.Token, true
}

func signCookie(encoded, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(encoded))
	return hex.EncodeToString(mac.Sum(nil))
}

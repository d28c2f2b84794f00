package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword gera o digest SHA-256 em hexadecimal da senha.
// Não há salt por usuário: senhas iguais produzem digests iguais,
// comportamento herdado do sistema antigo.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword recompute o digest e compara com o armazenado.
func CheckPassword(digest, password string) bool {
	return digest == HashPassword(password)
}

// Promove um usuário existente a administrador direto no banco.
// Uso: makeadmin <username>
package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/config"
	dbpkg "github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/db"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/pkg/logger"
)

func main() {

	cfg := config.Load()
	log.Logger = logger.New(logger.Options{Level: cfg.LogLevel})

	if len(os.Args) != 2 {
		log.Fatal().Msg("uso: makeadmin <username>")
	}
	username := os.Args[1]

	db := dbpkg.NewDB(cfg)

	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal().Str("username", username).Msg("usuário não encontrado")
		}
		log.Fatal().Err(err).Msg("falha ao buscar usuário")
	}

	if user.IsAdmin {
		log.Info().Str("username", username).Msg("usuário já é administrador")
		return
	}

	if err := db.Model(&user).Update("is_admin", true).Error; err != nil {
		log.Fatal().Err(err).Msg("falha ao promover usuário")
	}
	log.Info().Str("username", username).Msg("usuário promovido a administrador")
}

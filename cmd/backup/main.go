// Comando de backup do banco SQLite. Roda via cron:
//
//	0 3 * * * /usr/local/bin/backup
//
// Copia o arquivo do banco para BACKUP_DIR, envia para o S3 quando
// configurado e remove backups locais fora da retenção.
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/backup"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/config"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/pkg/logger"
)

func main() {

	cfg := config.Load()
	log.Logger = logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})

	if !cfg.UsesSQLite() {
		log.Fatal().Msg("backup por cópia de arquivo só se aplica a bancos SQLite")
	}

	file, err := backup.Create(cfg.DBPath, cfg.BackupDir)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao criar backup")
	}
	log.Info().Str("file", file).Msg("backup criado")

	if cfg.S3Bucket != "" {
		uploader := backup.NewS3Uploader(
			cfg.S3Bucket,
			cfg.S3Region,
			cfg.AWSAccessKeyID,
			cfg.AWSSecretKey,
		)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := uploader.Upload(ctx, file); err != nil {
			log.Error().Err(err).Msg("falha ao enviar backup para o S3")
		} else {
			log.Info().Str("bucket", cfg.S3Bucket).Msg("backup enviado para o S3")
		}
	}

	if err := backup.Cleanup(cfg.BackupDir); err != nil {
		log.Error().Err(err).Msg("falha ao limpar backups antigos")
	}
}

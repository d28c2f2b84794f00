package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/backup"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/config"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	var (
		gdb *gorm.DB
		err error
	)

	if cfg.UsesSQLite() {
		if dir := filepath.Dir(cfg.DBPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Fatal().Err(err).Msg("failed to create data dir")
			}
		}
		gdb, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	} else {
		gdb, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
			PrepareStmt: true,
		})
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	// Pool só faz sentido no caminho Postgres; o arquivo SQLite atende
	// uma conexão curta por operação.
	if !cfg.UsesSQLite() {
		sqlDB, err := gdb.DB()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to get sql.DB")
		}
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := migrate(gdb, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	seedScheduleConfig(gdb)

	return gdb
}

// migrate roda o AutoMigrate. No caminho SQLite o arquivo é copiado
// antes; se a migração ou o integrity_check falharem, a cópia volta por
// cima do banco vivo e o erro sobe para o operador.
func migrate(gdb *gorm.DB, cfg *config.Config) error {
	var backupFile string

	if cfg.UsesSQLite() {
		if _, err := os.Stat(cfg.DBPath); err == nil {
			f, err := backup.Create(cfg.DBPath, cfg.BackupDir)
			if err != nil {
				return fmt.Errorf("pre-migration backup: %w", err)
			}
			backupFile = f
			log.Info().Str("file", f).Msg("pre-migration backup created")
		}
	}

	err := gdb.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Service{},
		&models.Appointment{},
		&models.ScheduleConfig{},
		&models.Gallery{},
		&models.AuditLog{},
	)

	if err == nil && cfg.UsesSQLite() {
		err = integrityCheck(gdb)
	}

	if err != nil && backupFile != "" {
		if rerr := backup.Restore(backupFile, cfg.DBPath); rerr != nil {
			log.Error().Err(rerr).Msg("failed to restore pre-migration backup")
		} else {
			log.Warn().Str("file", backupFile).Msg("database restored from pre-migration backup")
		}
	}

	return err
}

func integrityCheck(gdb *gorm.DB) error {
	var result string
	if err := gdb.Raw("PRAGMA integrity_check").Scan(&result).Error; err != nil {
		return err
	}
	if result != "ok" {
		return fmt.Errorf("integrity check failed: %s", result)
	}
	return nil
}

// seedScheduleConfig garante uma linha por dia da semana, com o limite
// padrão de 5 de sempre.
func seedScheduleConfig(gdb *gorm.DB) {
	for wd := 0; wd < 7; wd++ {
		var cfg models.ScheduleConfig
		if err := gdb.Where("weekday = ?", wd).First(&cfg).Error; err != nil {
			gdb.Create(&models.ScheduleConfig{Weekday: wd, MaxAppointments: 5})
		}
	}
}

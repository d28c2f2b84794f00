// Monitor de erros da aplicação. Varre o arquivo de log em busca de
// entradas de erro das últimas 24 horas e dispara um e-mail de alerta
// quando encontra alguma. Pensado para rodar via cron uma vez por dia.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/config"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/notification"
	"github.com/BrunoCesarAngst/semprelimpa-piscinas/pkg/logger"
)

const maxAlertLines = 50

type logEntry struct {
	Level   string `json:"level"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

func main() {

	cfg := config.Load()
	log.Logger = logger.New(logger.Options{Level: cfg.LogLevel})

	errors, err := scanErrors(cfg.LogFile, time.Now().Add(-24*time.Hour))
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.LogFile).Msg("falha ao ler o log")
	}

	if len(errors) == 0 {
		log.Info().Msg("nenhum erro nas últimas 24 horas")
		return
	}

	log.Warn().Int("count", len(errors)).Msg("erros encontrados no log")

	mailer := notification.NewMailer(cfg.ResendAPIKey, cfg.EmailFrom, cfg.AlertEmail)
	if mailer == nil {
		log.Fatal().Msg("RESEND_API_KEY e ALERT_EMAIL são obrigatórios para o monitor alertar")
	}

	body := fmt.Sprintf(
		"Foram encontrados %d erros nas últimas 24 horas:\n\n%s",
		len(errors),
		strings.Join(errors, "\n"),
	)
	subject := fmt.Sprintf("%d erros no sistema em %s",
		len(errors), time.Now().Format("02/01/2006"))

	if err := mailer.SendAlert(subject, body); err != nil {
		log.Fatal().Err(err).Msg("falha ao enviar alerta")
	}
	log.Info().Msg("alerta enviado")
}

// scanErrors devolve as linhas de nível error/fatal registradas depois
// de `since`, limitadas a maxAlertLines para o e-mail não explodir.
func scanErrors(path string, since time.Time) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var out []string

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()

		var entry logEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry.Level != "error" && entry.Level != "fatal" {
			continue
		}

		ts, err := time.Parse(time.RFC3339, entry.Time)
		if err != nil || ts.Before(since) {
			continue
		}

		out = append(out, line)
		if len(out) >= maxAlertLines {
			break
		}
	}
	return out, sc.Err()
}

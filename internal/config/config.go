package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string

	// SQLite é o caminho padrão; DATABASE_URL (Postgres) é a alternativa
	// para deploys sem arquivo local.
	DBPath      string
	DatabaseURL string

	CookieSecret string
	AdminSecret  string
	ServerPort   string

	WeatherAPIKey string
	WeatherCity   string
	RedisAddr     string

	WhatsAppLink string

	MercadoPagoAccessToken string

	ResendAPIKey string
	AlertEmail   string
	EmailFrom    string

	UploadsDir string
	GalleryDir string
	BackupDir  string

	S3Bucket       string
	S3Region       string
	AWSAccessKeyID string
	AWSSecretKey   string

	LogLevel string
	LogFile  string

	Flags FeatureFlags
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "development")

	// Cada ambiente tem seu próprio arquivo .env; o genérico é o fallback.
	envFile := ".env." + env
	if _, err := os.Stat(envFile); err != nil {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)

	return &Config{
		Environment: env,

		DBPath:      getEnv("DB_PATH", "data/database_"+env+".db"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		CookieSecret: getEnv("COOKIE_SECRET", "changeme"),
		AdminSecret:  getEnv("ADMIN_SECRET", "admin_secret"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),

		WeatherAPIKey: getEnv("WEATHER_API_KEY", ""),
		WeatherCity:   getEnv("WEATHER_CITY", "Arroio do Sal,BR"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),

		WhatsAppLink: getEnv("WHATSAPP_LINK", ""),

		MercadoPagoAccessToken: getEnv("MP_ACCESS_TOKEN", ""),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		AlertEmail:   getEnv("ALERT_EMAIL", ""),
		EmailFrom:    getEnv("EMAIL_FROM", "Sempre Limpa <alertas@semprelimpa.com.br>"),

		UploadsDir: getEnv("UPLOADS_DIR", "uploads"),
		GalleryDir: getEnv("GALLERY_DIR", "gallery"),
		BackupDir:  getEnv("BACKUP_DIR", "backups"),

		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3Region:       getEnv("S3_REGION", "sa-east-1"),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", "app.log"),

		Flags: loadFlags(),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesSQLite indica se o banco é o arquivo local (caminho padrão).
func (c *Config) UsesSQLite() bool {
	return c.DatabaseURL == ""
}

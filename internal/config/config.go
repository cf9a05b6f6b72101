package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config es la configuración del proceso. Todo viene de env (y opcionalmente de .env).
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppName string `env:"APP_NAME" envDefault:"vet-clinic"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// DB_DSN vacío = repos in-memory.
	DBDSN         string `env:"DB_DSN"`
	DBAutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"false"`

	// REDIS_URL vacío = broadcast solo a las conexiones de esta instancia.
	RedisURL                  string `env:"REDIS_URL"`
	RedisNotificationsChannel string `env:"REDIS_NOTIFICATIONS_CHANNEL" envDefault:"clinic:notifications"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// AUTH_VERIFY_URL vacío = modo dev (headers X-Debug-*). No se permite en production.
	AuthVerifyURL string `env:"AUTH_VERIFY_URL"`
	AuthAPIKey    string `env:"AUTH_API_KEY"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	NotifierTimeout time.Duration `env:"NOTIFIER_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Load lee los .env que existan (el primero gana por variable) y parsea el entorno.
// Las variables ya seteadas en el proceso no se pisan.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	existing := make([]string, 0, len(envFiles))
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return Config{}, fmt.Errorf("load env files: %w", err)
		}
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	if c.NotifierTimeout <= 0 {
		return errors.New("NOTIFIER_TIMEOUT must be positive")
	}
	if c.IsProduction() && strings.TrimSpace(c.AuthVerifyURL) == "" {
		return errors.New("AUTH_VERIFY_URL is required when APP_ENV=production")
	}
	return nil
}

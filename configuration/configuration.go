package configuration

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sethrock/AppointmentManager/models"
)

// Fallback policies for upstream Formsite failures on the dashboard read
// path. Fail is the production default; fixture serves the built-in demo
// dataset and is only for development. Never both in one deployment.
const (
	FallbackFail    = "fail"
	FallbackFixture = "fixture"
)

// Config centralises all environment configuration. Nothing else in the
// codebase reads the environment; components take what they need from here.
type Config struct {
	DatabaseURL string // empty runs on the in-memory store

	FormsiteServer  string `validate:"required"`
	FormsiteUserDir string `validate:"required"`
	FormsiteFormDir string `validate:"required"`
	FormsiteToken   string `validate:"required"`

	FallbackMode string `validate:"oneof=fail fixture"`

	RedisAddr     string // empty disables the results cache
	RedisPassword string
	CacheTTLSecs  int

	JWTSecret string `validate:"required"`

	// optional SMTP notification on Complete/Cancel
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	NotifyTo     string
}

// Load reads .env (if present), collects the environment into a Config and
// validates it.
func Load(log zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Msg("no .env file, using process environment")
	}

	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		FormsiteServer:  getEnvOrDefault("FORMSITE_SERVER", "fs16"),
		FormsiteUserDir: os.Getenv("FORMSITE_USER_DIR"),
		FormsiteFormDir: getEnvOrDefault("FORMSITE_FORM_DIR", "appointment"),
		FormsiteToken:   os.Getenv("FORMSITE_API_TOKEN"),
		FallbackMode:    getEnvOrDefault("FALLBACK_MODE", FallbackFail),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		CacheTTLSecs:    getEnvInt("CACHE_TTL_SECONDS", 30),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getEnvInt("SMTP_PORT", 587),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		NotifyTo:        os.Getenv("NOTIFY_TO"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ConnectDB opens Postgres and migrates the schema. TranslateError lets the
// storage layer detect duplicate keys portably.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.Appointment{},
		&models.WebhookLog{},
		&models.StaffUser{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return db, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

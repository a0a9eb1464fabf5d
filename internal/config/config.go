package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken                 string `env:"BOT_TOKEN" validate:"required"`
	BotPassword              string `env:"BOT_PASSWORD" validate:"required"`
	AppEnv                   string `env:"APP_ENV" validate:"oneof=production development"`
	Timezone                 string `env:"TIMEZONE" validate:"required"`
	QuizHistoryRetentionDays int    `env:"QUIZ_HISTORY_RETENTION_DAYS" validate:"min=1"`
	MigrationsPath           string `env:"MIGRATIONS_PATH" validate:"required"`
	Database                 DatabaseConfig

	// Location is Timezone resolved by Load
	Location *time.Location `validate:"-"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" validate:"required"`
	Port     string `env:"DB_PORT" validate:"required,numeric"`
	Name     string `env:"DB_NAME" validate:"required"`
	User     string `env:"DB_USER" validate:"required"`
	Password string `env:"DB_PASSWORD" validate:"required"`
	SSLMode  string `env:"DB_SSLMODE" validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("env"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	retention, err := strconv.Atoi(getEnv("QUIZ_HISTORY_RETENTION_DAYS", "180"))
	if err != nil {
		return nil, fmt.Errorf("QUIZ_HISTORY_RETENTION_DAYS must be a number: %w", err)
	}

	cfg := &Config{
		BotToken:                 os.Getenv("BOT_TOKEN"),
		BotPassword:              os.Getenv("BOT_PASSWORD"),
		AppEnv:                   getEnv("APP_ENV", "production"),
		Timezone:                 getEnv("TIMEZONE", "Europe/Berlin"),
		QuizHistoryRetentionDays: retention,
		MigrationsPath:           getEnv("MIGRATIONS_PATH", "file://migrations"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "vocabtrainer"),
			User:     getEnv("DB_USER", "vocabtrainer"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", cfg.Timezone, err)
	}

	return cfg, nil
}

// Validate checks required fields and reports them by environment variable name
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s has invalid value %q", fe.Field(), fmt.Sprint(fe.Value())))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// IsDevelopment reports whether the bot runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

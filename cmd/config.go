package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"packing/internal/adapters/out/oes"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	OESHost     string
	OESPort     int
	OESUser     string
	OESPassword string
	OESDatabase string

	JWTSecret string

	LogLevel  string
	LogPretty bool

	LowStockCron   string
	StalePackCron  string
	StalePackAfter time.Duration
}

// LoadConfig reads an optional .env file, then the process environment.
// Environment variables win over .env entries.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "packing")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("OES_PORT", 1433)
	v.SetDefault("OES_DATABASE", "Dayus_OES")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("LOW_STOCK_CRON", "0 7 * * *")
	v.SetDefault("STALE_PACK_CRON", "0 * * * *")
	v.SetDefault("STALE_PACK_AFTER", "48h")

	cfg := Config{
		HTTPPort:       v.GetString("HTTP_PORT"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBSslMode:      v.GetString("DB_SSLMODE"),
		OESHost:        v.GetString("OES_HOST"),
		OESPort:        v.GetInt("OES_PORT"),
		OESUser:        v.GetString("OES_USER"),
		OESPassword:    v.GetString("OES_PASSWORD"),
		OESDatabase:    v.GetString("OES_DATABASE"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogPretty:      v.GetBool("LOG_PRETTY"),
		LowStockCron:   v.GetString("LOW_STOCK_CRON"),
		StalePackCron:  v.GetString("STALE_PACK_CRON"),
		StalePackAfter: v.GetDuration("STALE_PACK_AFTER"),
	}

	if cfg.StalePackAfter <= 0 {
		return Config{}, fmt.Errorf("STALE_PACK_AFTER must be a positive duration, got %q", v.GetString("STALE_PACK_AFTER"))
	}
	return cfg, nil
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// OESEnabled reports whether an order-entry database is configured. Without
// one, packs can only be started for orders already imported.
func (c Config) OESEnabled() bool {
	return c.OESHost != ""
}

func (c Config) OESDSN() string {
	return oes.DSN(c.OESUser, c.OESPassword, c.OESHost, c.OESPort, c.OESDatabase)
}

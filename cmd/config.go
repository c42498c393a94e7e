package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/realtime"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AMQPURL      string
	AMQPExchange string

	SnapshotSchedule       string
	RiderReconcileSchedule string

	WSSendQueue int
	LogLevel    slog.Level
}

// LoadConfig reads .env when the file exists and then the process
// environment. Unset variables fall back to defaults suitable for local runs:
// no database (snapshots stay in memory) and no event mirror.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		DBDriver:               getEnv("DB_DRIVER", postgres.DriverPgx),
		DBHost:                 getEnv("DB_HOST", ""),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             getEnv("DB_PASSWORD", ""),
		DBName:                 getEnv("DB_NAME", "dispatch"),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		AMQPURL:                getEnv("AMQP_URL", ""),
		AMQPExchange:           getEnv("AMQP_EXCHANGE", ""),
		SnapshotSchedule:       getEnv("SNAPSHOT_SCHEDULE", "@every 30s"),
		RiderReconcileSchedule: getEnv("RIDER_RECONCILE_SCHEDULE", "@every 10s"),
	}

	queue, err := strconv.Atoi(getEnv("WS_SEND_QUEUE", strconv.Itoa(realtime.DefaultConfig().SendQueue)))
	if err != nil || queue <= 0 {
		return Config{}, fmt.Errorf("WS_SEND_QUEUE must be a positive integer: %q", os.Getenv("WS_SEND_QUEUE"))
	}
	cfg.WSSendQueue = queue

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "INFO"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// DatabaseEnabled reports whether snapshots and audit entries go to PostgreSQL.
func (c Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

// EventMirrorEnabled reports whether hub events are copied to RabbitMQ.
func (c Config) EventMirrorEnabled() bool {
	return c.AMQPURL != ""
}

func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Driver:   c.DBDriver,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

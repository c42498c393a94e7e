// Package postgres opens the PostgreSQL database behind the snapshot store
// and the audit log.
//
// The registries themselves live in memory; the database only receives the
// periodic snapshot documents and the audit trail, so a single schema
// migration covers everything:
//
//	db, err := postgres.Open(postgres.Config{Host: "localhost", Port: "5432", ...})
//	if err != nil {
//	    return err
//	}
//	if err = postgres.Migrate(db); err != nil {
//	    return err
//	}
//	store := snapshotrepo.NewGormSnapshotStore(db)
//
// Two database/sql drivers are supported: "pgx" (the gorm default) and
// "postgres", which is github.com/lib/pq.
package postgres

import (
	"fmt"

	"dispatch/internal/adapters/out/postgres/auditrepo"
	"dispatch/internal/adapters/out/postgres/snapshotrepo"

	// Registers the "postgres" database/sql driver.
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported database/sql driver names.
const (
	DriverPgx = "pgx"
	DriverPq  = "postgres"
)

type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the keyword/value connection string understood by both drivers.
func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode)
}

// Open connects with the configured driver.
func Open(cfg Config) (*gorm.DB, error) {
	return OpenDSN(cfg.Driver, cfg.DSN())
}

// OpenDSN connects to dsn through driver, which defaults to pgx.
func OpenDSN(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "":
		driver = DriverPgx
	case DriverPgx, DriverPq:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	dialector := gormpostgres.New(gormpostgres.Config{
		DriverName: driver,
		DSN:        dsn,
	})
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the snapshot and audit tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&snapshotrepo.SnapshotDTO{}, &auditrepo.AuditEntryDTO{})
}

package migrate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"gorm.io/gorm"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// RunMigrations applies the SQL migrations on top of the AutoMigrate
// schema. They carry the constraints gorm tags cannot express, like the
// partial unique index on pending offers.
func RunMigrations(db *gorm.DB, migrationsDir string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("init migration driver: %w", err)
	}

	migrator, err := migrate.NewWithDatabaseInstance("file://"+migrationsDir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("init migrator for %s: %w", migrationsDir, err)
	}

	err = migrator.Up()
	switch {
	case err == nil:
		version, dirty, _ := migrator.Version()
		slog.Info("migrations applied", "version", version, "dirty", dirty)
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("migrations already up to date")
	default:
		return fmt.Errorf("apply migrations from %s: %w", migrationsDir, err)
	}
	return nil
}

package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"nestlog/internal/app/server/config"
)

// Migrator is the slice of migrate.Migrate the runner needs.
type Migrator interface {
	Up() error
	Close() (error, error)
}

// Engine builds a Migrator. Tests inject a fake so Up never touches the
// filesystem or a database.
type Engine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    *config.Config
	engine Engine
}

func NewMigration(cfg *config.Config, engine Engine) *Migration {
	return &Migration{
		cfg:    cfg,
		engine: engine,
	}
}

// DefaultEngine is the real golang-migrate implementation.
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

func (mg *Migration) Up() (err error) {
	m, err := mg.engine("file://"+mg.cfg.DB.Migrations, mg.cfg.DB.DatabaseURI)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			err = errors.Join(err, fmt.Errorf("migration source close: %w", serr))
		}
		if dberr != nil {
			err = errors.Join(err, fmt.Errorf("migration database close: %w", dberr))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}

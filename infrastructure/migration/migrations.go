package migration

import (
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var FS embed.FS

const Version = 1

// Migrate aplica as migrações embutidas até Version
func Migrate(dsn string) error {
	driver, err := iofs.New(FS, "sql")
	if err != nil {
		return err
	}
	defer driver.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", driver, dsn)
	if err != nil {
		return err
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return errors.New("banco de dados em estado sujo (dirty), corrija a migração manualmente")
	}

	if err = mg.Migrate(Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"from": current,
		"to":   Version,
	}).Info("Migrações aplicadas")

	return nil
}

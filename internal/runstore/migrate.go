package runstore

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/gitsum/gitsum/internal/contract"
	"github.com/gitsum/gitsum/schema"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// Migrate runs database migrations for the run store.
// - If targetVersion < 0, it migrates to the latest version.
// - If targetVersion == 0, it rolls back all migrations.
// - If targetVersion > 0, it migrates to the specified version.
func Migrate(backend schema.DatabaseBackend, connStr string, targetVersion int) error {
	if backend == schema.NoneBackend {
		return fmt.Errorf("migrations are not supported for the none backend")
	}

	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetRunsDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
	case schema.MySQLBackend:
		sep := "?"
		if strings.Contains(connStr, "?") {
			sep = "&"
		}
		db, err = sql.Open("mysql", connStr+sep+"multiStatements=true")
	case schema.PostgreSQLBackend:
		db, err = sql.Open("pgx", connStr)
	default:
		return fmt.Errorf("unsupported backend: %s", backend)
	}
	if err != nil {
		return fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	defer func() { _ = db.Close() }()

	driver, subdir, err := migrationDriver(db, backend)
	if err != nil {
		return err
	}

	srcFS, err := fs.Sub(migrationsFS, "migrations/"+subdir)
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	src, err := iofs.New(srcFS, ".")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, string(backend), driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	switch {
	case targetVersion < 0:
		err = m.Up()
	case targetVersion == 0:
		err = m.Down()
	default:
		err = m.Migrate(uint(targetVersion))
	}
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// migrationDriver builds the migrate database driver for the backend and
// returns the embedded migration subdirectory to use.
func migrationDriver(db *sql.DB, backend schema.DatabaseBackend) (database.Driver, string, error) {
	switch backend {
	case schema.SQLiteBackend:
		driver, err := sqlite.WithInstance(db, &sqlite.Config{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create sqlite migration driver: %w", err)
		}
		return driver, "sqlite", nil
	case schema.MySQLBackend:
		driver, err := mysql.WithInstance(db, &mysql.Config{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create mysql migration driver: %w", err)
		}
		return driver, "mysql", nil
	case schema.PostgreSQLBackend:
		driver, err := postgres.WithInstance(db, &postgres.Config{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create postgres migration driver: %w", err)
		}
		return driver, "postgres", nil
	default:
		return nil, "", fmt.Errorf("unsupported backend: %s", backend)
	}
}

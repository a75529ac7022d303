package words

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the word bank database. With DATABASE_URL set it uses
// PostgreSQL, otherwise a SQLite file under the data directory.
func Open() (*sqlx.DB, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err := initializeSchema(db); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	}

	dataDir := "data"
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := sqlx.Connect("sqlite3", filepath.Join(dataDir, "deutschbuddy.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
	}

	// SQLite doesn't support multiple writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func initializeSchema(db *sqlx.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			german TEXT NOT NULL,
			persian TEXT NOT NULL,
			level TEXT NOT NULL DEFAULT 'A1',
			UNIQUE (german)
		)
	`
	if db.DriverName() == "postgres" {
		schema = `
			CREATE TABLE IF NOT EXISTS words (
				id SERIAL PRIMARY KEY,
				german TEXT NOT NULL UNIQUE,
				persian TEXT NOT NULL,
				level TEXT NOT NULL DEFAULT 'A1'
			)
		`
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create words table: %w", err)
	}
	return nil
}

package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// accountsSchema is the single-table layout for the service. The id is
// assigned by the sequence and date_joined defaults to the creation date.
const accountsSchema = `
CREATE TABLE IF NOT EXISTS accounts (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    address TEXT NOT NULL,
    phone_number TEXT,
    date_joined DATE NOT NULL DEFAULT CURRENT_DATE
)`

// Connect opens a PostgreSQL connection pool and verifies it with a ping.
func Connect(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return db, nil
}

// EnsureSchema creates the accounts table when it does not exist yet. No
// further migrations are performed.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(accountsSchema); err != nil {
		return fmt.Errorf("could not apply accounts schema: %w", err)
	}
	return nil
}

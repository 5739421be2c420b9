package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// schema is applied by EnsureSchema; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id              BIGINT AUTO_INCREMENT PRIMARY KEY,
		name            VARCHAR(64)  NOT NULL UNIQUE,
		passphrase_hash VARCHAR(255) NOT NULL,
		created_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS profile_settings (
		profile_id BIGINT      NOT NULL,
		name       VARCHAR(64) NOT NULL,
		value      JSON        NOT NULL,
		updated_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (profile_id, name),
		FOREIGN KEY (profile_id) REFERENCES profiles(id) ON DELETE CASCADE
	)`,
}

// NewDB creates a new MySQL database connection pool with the given DSN.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates the profile and settings tables when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	slog.Debug("database schema ready", "tables", len(schema))
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// MySQLSettingsStore keeps one row per settings key with a JSON value.
type MySQLSettingsStore struct {
	db *sql.DB
}

func NewMySQLSettingsStore(db *sql.DB) *MySQLSettingsStore {
	return &MySQLSettingsStore{db: db}
}

// Load returns every stored key for the profile; an unknown profile yields an
// empty map.
func (s *MySQLSettingsStore) Load(ctx context.Context, profileID int64) (map[string]any, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, value FROM profile_settings WHERE profile_id = ?`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]any)
	for rows.Next() {
		var name string
		var raw []byte
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, err
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decoding setting %q: %w", name, err)
		}
		values[name] = v
	}
	return values, rows.Err()
}

// Save upserts every key of values in one transaction. Keys not present are
// left untouched.
func (s *MySQLSettingsStore) Save(ctx context.Context, profileID int64, values map[string]any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const upsert = `INSERT INTO profile_settings (profile_id, name, value) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE value = VALUES(value)`

	for name, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding setting %q: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, upsert, profileID, name, raw); err != nil {
			return err
		}
	}

	return tx.Commit()
}

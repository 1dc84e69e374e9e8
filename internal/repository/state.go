package repository

import (
	"database/sql"
	"errors"
)

// StorageKey is the key the whole application state is stored under.
const StorageKey = "appli-appart-storage"

// StateRepo reads and writes one JSON document in the kv_store table.
type StateRepo struct {
	db  *sql.DB
	key string
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db, key: StorageKey}
}

// NewStateRepoWithKey is used when several independent stores share a
// database.
func NewStateRepoWithKey(db *sql.DB, key string) *StateRepo {
	return &StateRepo{db: db, key: key}
}

// Load returns the stored document, or nil when none has been saved.
func (r *StateRepo) Load() ([]byte, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM kv_store WHERE key = ?", r.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (r *StateRepo) Save(data []byte) error {
	_, err := r.db.Exec(`
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, r.key, string(data))
	return err
}

func (r *StateRepo) Delete() error {
	_, err := r.db.Exec("DELETE FROM kv_store WHERE key = ?", r.key)
	return err
}

package repository

import (
	"context"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
)

// GetConfig returns the raw value stored for a runtime configuration key.
// The engine treats a missing key as "use the default", so sql.ErrNoRows is
// passed through untouched.
func (r *Repository) GetConfig(key string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT value FROM app_config WHERE key = $1
	`

	var value string
	if err := r.dbpool.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		return "", err
	}

	return value, nil
}

func (r *Repository) GetAllConfig() ([]domain.ConfigEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT key, value, updated_at FROM app_config ORDER BY key
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.ConfigEntry, 0)
	for rows.Next() {
		var entry domain.ConfigEntry
		if err := rows.Scan(&entry.Key, &entry.Value, &entry.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repository) SetConfig(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO app_config (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`

	if _, err := r.dbpool.ExecContext(ctx, query, key, value); err != nil {
		return err
	}

	return nil
}

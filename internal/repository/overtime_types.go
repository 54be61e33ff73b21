package repository

import (
	"context"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
)

func (r *Repository) GetAllOvertimeTypes() ([]domain.OvertimeType, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, code, name, percentage, is_active, created_at, version
		FROM overtime_types
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]domain.OvertimeType, 0)
	for rows.Next() {
		var ot domain.OvertimeType
		dst := []any{&ot.ID, &ot.Code, &ot.Name, &ot.Percentage, &ot.IsActive, &ot.CreatedAt, &ot.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		types = append(types, ot)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

func (r *Repository) GetActiveOvertimeTypes() ([]domain.OvertimeType, error) {
	types, err := r.GetAllOvertimeTypes()
	if err != nil {
		return nil, err
	}

	active := make([]domain.OvertimeType, 0, len(types))
	for _, ot := range types {
		if ot.IsActive {
			active = append(active, ot)
		}
	}

	return active, nil
}

func (r *Repository) GetOvertimeType(id int64) (*domain.OvertimeType, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, code, name, percentage, is_active, created_at, version
		FROM overtime_types
		WHERE id = $1
	`

	ot := &domain.OvertimeType{}
	dst := []any{&ot.ID, &ot.Code, &ot.Name, &ot.Percentage, &ot.IsActive, &ot.CreatedAt, &ot.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return ot, nil
}

func (r *Repository) CreateOvertimeType(ot *domain.OvertimeType) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO overtime_types (code, name, percentage, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	params := []any{ot.Code, ot.Name, ot.Percentage, ot.IsActive}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&ot.ID, &ot.CreatedAt, &ot.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateOvertimeType(ot *domain.OvertimeType) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE overtime_types
		SET
			name = $1,
			percentage = $2,
			is_active = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	params := []any{ot.Name, ot.Percentage, ot.IsActive, ot.ID, ot.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&ot.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteOvertimeType(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM overtime_types WHERE id = $1
	`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

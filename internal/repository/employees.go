package repository

import (
	"context"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
)

func (r *Repository) CreateEmployee(e *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO employees (username, password_hash, full_name, email, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at, version
	`

	params := []any{e.Username, e.PasswordHash, e.FullName, e.Email, e.Role}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&e.ID, &e.IsActive, &e.CreatedAt, &e.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, username, password_hash, full_name, email, role, is_active, created_at, version
		FROM employees
		WHERE id = $1
	`

	e := &domain.Employee{}
	dst := []any{&e.ID, &e.Username, &e.PasswordHash, &e.FullName, &e.Email, &e.Role, &e.IsActive, &e.CreatedAt, &e.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *Repository) GetEmployeeByUsername(username string) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, username, password_hash, full_name, email, role, is_active, created_at, version
		FROM employees
		WHERE username = $1
	`

	e := &domain.Employee{}
	dst := []any{&e.ID, &e.Username, &e.PasswordHash, &e.FullName, &e.Email, &e.Role, &e.IsActive, &e.CreatedAt, &e.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, username).Scan(dst...); err != nil {
		return nil, err
	}

	return e, nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, username, password_hash, full_name, email, role, is_active, created_at, version
		FROM employees
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		e := &domain.Employee{}
		dst := []any{&e.ID, &e.Username, &e.PasswordHash, &e.FullName, &e.Email, &e.Role, &e.IsActive, &e.CreatedAt, &e.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) UpdateEmployee(e *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE employees
		SET
			password_hash = $1,
			full_name = $2,
			email = $3,
			role = $4,
			is_active = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	params := []any{e.PasswordHash, e.FullName, e.Email, e.Role, e.IsActive, e.ID, e.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&e.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) CheckEmailIfExists(email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)
	`

	var exists bool
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) DeleteEmployee(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM employees WHERE id = $1
	`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

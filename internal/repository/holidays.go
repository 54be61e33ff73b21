package repository

import (
	"context"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
)

func (r *Repository) GetAllHolidays() ([]domain.Holiday, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, date, name
		FROM holidays
		ORDER BY date
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]domain.Holiday, 0)
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

func (r *Repository) CreateHoliday(h *domain.Holiday) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO holidays (date, name)
		VALUES ($1, $2)
		ON CONFLICT (date) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	if err := r.dbpool.QueryRowContext(ctx, query, h.Date, h.Name).Scan(&h.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetExemptionsByEmployee(employeeID int64) ([]domain.HolidayExemption, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, employee_id, date, holiday_name, reason, created_at
		FROM holiday_exemptions
		WHERE employee_id = $1
		ORDER BY date
	`

	rows, err := r.dbpool.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exemptions := make([]domain.HolidayExemption, 0)
	for rows.Next() {
		var e domain.HolidayExemption
		dst := []any{&e.ID, &e.EmployeeID, &e.Date, &e.HolidayName, &e.Reason, &e.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		exemptions = append(exemptions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exemptions, nil
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
)

// CreateScheduleAssignment persists an assignment together with its
// materialized days, blocks and exemption records in one transaction, so a
// failure on any date leaves nothing behind.
func (r *Repository) CreateScheduleAssignment(a *domain.ScheduleAssignment, exemptions []domain.HolidayExemption) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO schedule_assignments (employee_id, shift_template_id, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`
	params := []any{a.EmployeeID, a.ShiftTemplateID, a.StartDate, a.EndDate}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&a.ID, &a.CreatedAt, &a.Version); err != nil {
		return err
	}

	if err := insertDays(ctx, tx, a); err != nil {
		return err
	}

	for _, exemption := range exemptions {
		query = `
			INSERT INTO holiday_exemptions (employee_id, date, holiday_name, reason)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (employee_id, date) DO UPDATE SET reason = EXCLUDED.reason, holiday_name = EXCLUDED.holiday_name
		`
		if _, err := tx.ExecContext(ctx, query, exemption.EmployeeID, exemption.Date, exemption.HolidayName, exemption.Reason); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// RegenerateScheduleDays replaces the day set of an existing assignment.
// The old days are removed first so regeneration never duplicates.
func (r *Repository) RegenerateScheduleDays(a *domain.ScheduleAssignment) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_days WHERE assignment_id = $1`, a.ID); err != nil {
		return err
	}

	if err := insertDays(ctx, tx, a); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func insertDays(ctx context.Context, tx *sql.Tx, a *domain.ScheduleAssignment) error {
	for i := range a.Days {
		query := `
			INSERT INTO schedule_days (assignment_id, date, day_of_week)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query, a.ID, a.Days[i].Date, a.Days[i].DayOfWeek).Scan(&a.Days[i].ID); err != nil {
			return err
		}

		for j := range a.Days[i].Blocks {
			query = `
				INSERT INTO time_blocks (day_id, start_time, end_time)
				VALUES ($1, $2, $3)
				RETURNING id
			`
			params := []any{a.Days[i].ID, a.Days[i].Blocks[j].StartTime, a.Days[i].Blocks[j].EndTime}
			if err := tx.QueryRowContext(ctx, query, params...).Scan(&a.Days[i].Blocks[j].ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Repository) GetScheduleAssignment(id int64) (*domain.ScheduleAssignment, error) {
	assignments, err := r.queryAssignments(`sa.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, sql.ErrNoRows
	}
	return assignments[0], nil
}

func (r *Repository) GetScheduleAssignmentsByEmployee(employeeID int64) ([]*domain.ScheduleAssignment, error) {
	return r.queryAssignments(`sa.employee_id = $1`, employeeID)
}

func (r *Repository) GetScheduleAssignmentsByIDs(ids []int64) ([]*domain.ScheduleAssignment, error) {
	assignments := make([]*domain.ScheduleAssignment, 0, len(ids))
	for _, id := range ids {
		assignment, err := r.GetScheduleAssignment(id)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	return assignments, nil
}

func (r *Repository) queryAssignments(where string, param any) ([]*domain.ScheduleAssignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			sa.id,
			sa.employee_id,
			sa.shift_template_id,
			sa.start_date,
			sa.end_date,
			sa.created_at,
			sa.version,
			sd.id,
			sd.date,
			sd.day_of_week,
			tb.id,
			tb.start_time,
			tb.end_time
		FROM schedule_assignments sa
		LEFT JOIN schedule_days sd ON sa.id = sd.assignment_id
		LEFT JOIN time_blocks tb ON sd.id = tb.day_id
		WHERE ` + where + `
		ORDER BY sa.id, sd.date, tb.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, param)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignmentsMap := make(map[int64]*domain.ScheduleAssignment)
	daysMap := make(map[int64]map[int64]*domain.ScheduleDay) // assignmentID -> dayID -> day
	order := make([]int64, 0)
	dayOrder := make(map[int64][]int64)

	for rows.Next() {
		var row struct {
			ID              int64
			EmployeeID      int64
			ShiftTemplateID int64
			StartDate       time.Time
			EndDate         sql.NullTime
			CreatedAt       time.Time
			Version         int32

			DayID     sql.NullInt64
			Date      sql.NullTime
			DayOfWeek sql.NullInt32

			BlockID   sql.NullInt64
			StartTime sql.NullString
			EndTime   sql.NullString
		}

		dst := []any{
			&row.ID,
			&row.EmployeeID,
			&row.ShiftTemplateID,
			&row.StartDate,
			&row.EndDate,
			&row.CreatedAt,
			&row.Version,
			&row.DayID,
			&row.Date,
			&row.DayOfWeek,
			&row.BlockID,
			&row.StartTime,
			&row.EndTime,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		assignment, exists := assignmentsMap[row.ID]
		if !exists {
			assignment = &domain.ScheduleAssignment{
				ID:              row.ID,
				EmployeeID:      row.EmployeeID,
				ShiftTemplateID: row.ShiftTemplateID,
				StartDate:       row.StartDate,
				Days:            make([]domain.ScheduleDay, 0),
				CreatedAt:       row.CreatedAt,
				Version:         row.Version,
			}
			if row.EndDate.Valid {
				endDate := row.EndDate.Time
				assignment.EndDate = &endDate
			}
			assignmentsMap[row.ID] = assignment
			daysMap[row.ID] = make(map[int64]*domain.ScheduleDay)
			order = append(order, row.ID)
		}

		if !row.DayID.Valid {
			continue
		}

		day, exists := daysMap[row.ID][row.DayID.Int64]
		if !exists {
			day = &domain.ScheduleDay{
				ID:        row.DayID.Int64,
				Date:      row.Date.Time,
				DayOfWeek: row.DayOfWeek.Int32,
				Blocks:    make([]domain.TimeBlock, 0),
			}
			daysMap[row.ID][row.DayID.Int64] = day
			dayOrder[row.ID] = append(dayOrder[row.ID], row.DayID.Int64)
		}

		if !row.BlockID.Valid {
			continue
		}

		day.Blocks = append(day.Blocks, domain.TimeBlock{
			ID:        row.BlockID.Int64,
			StartTime: row.StartTime.String,
			EndTime:   row.EndTime.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	assignments := make([]*domain.ScheduleAssignment, 0, len(order))
	for _, id := range order {
		assignment := assignmentsMap[id]
		for _, dayID := range dayOrder[id] {
			assignment.Days = append(assignment.Days, *daysMap[id][dayID])
		}
		assignments = append(assignments, assignment)
	}

	return assignments, nil
}

func (r *Repository) DeleteScheduleAssignment(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM schedule_assignments WHERE id = $1
	`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

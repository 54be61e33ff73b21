package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
)

// ReplaceEmployeeGroups swaps out every cached group of one employee in a
// single transaction. Groups are recomputed, not appended to, whenever the
// member assignments change.
func (r *Repository) ReplaceEmployeeGroups(employeeID int64, groups []*domain.ScheduleAssignmentGroup) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_assignment_groups WHERE employee_id = $1`, employeeID); err != nil {
		return err
	}

	for _, g := range groups {
		query := `
			INSERT INTO schedule_assignment_groups (
				employee_id, period_start, period_end,
				regular_hours, overtime_hours, festivo_hours, total_hours, assigned_hours,
				predominant_overtime, predominant_festivo, status
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at, version
		`
		params := []any{
			g.EmployeeID,
			g.PeriodStart,
			g.PeriodEnd,
			g.RegularHours,
			g.OvertimeHours,
			g.FestivoHours,
			g.TotalHours,
			g.AssignedHours,
			g.PredominantOvertime,
			g.PredominantFestivo,
			g.Status,
		}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&g.ID, &g.CreatedAt, &g.Version); err != nil {
			return err
		}

		for _, assignmentID := range g.AssignmentIDs {
			query = `
				INSERT INTO group_assignments (group_id, assignment_id)
				VALUES ($1, $2)
			`
			if _, err := tx.ExecContext(ctx, query, g.ID, assignmentID); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetGroupsByEmployee(employeeID int64) ([]*domain.ScheduleAssignmentGroup, error) {
	return r.queryGroups(`g.employee_id = $1`, employeeID)
}

func (r *Repository) GetGroup(id int64) (*domain.ScheduleAssignmentGroup, error) {
	groups, err := r.queryGroups(`g.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, sql.ErrNoRows
	}
	return groups[0], nil
}

func (r *Repository) queryGroups(where string, param any) ([]*domain.ScheduleAssignmentGroup, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			g.id,
			g.employee_id,
			g.period_start,
			g.period_end,
			g.regular_hours,
			g.overtime_hours,
			g.festivo_hours,
			g.total_hours,
			g.assigned_hours,
			g.predominant_overtime,
			g.predominant_festivo,
			g.status,
			g.created_at,
			g.version,
			ga.assignment_id
		FROM schedule_assignment_groups g
		LEFT JOIN group_assignments ga ON g.id = ga.group_id
		WHERE ` + where + `
		ORDER BY g.id, ga.assignment_id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, param)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groupsMap := make(map[int64]*domain.ScheduleAssignmentGroup)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			Group        domain.ScheduleAssignmentGroup
			Predominant  sql.NullString
			PredFestivo  sql.NullString
			AssignmentID sql.NullInt64
		}

		dst := []any{
			&row.Group.ID,
			&row.Group.EmployeeID,
			&row.Group.PeriodStart,
			&row.Group.PeriodEnd,
			&row.Group.RegularHours,
			&row.Group.OvertimeHours,
			&row.Group.FestivoHours,
			&row.Group.TotalHours,
			&row.Group.AssignedHours,
			&row.Predominant,
			&row.PredFestivo,
			&row.Group.Status,
			&row.Group.CreatedAt,
			&row.Group.Version,
			&row.AssignmentID,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		group, exists := groupsMap[row.Group.ID]
		if !exists {
			group = &row.Group
			group.AssignmentIDs = make([]int64, 0)
			if row.Predominant.Valid {
				value := row.Predominant.String
				group.PredominantOvertime = &value
			}
			if row.PredFestivo.Valid {
				value := row.PredFestivo.String
				group.PredominantFestivo = &value
			}
			groupsMap[group.ID] = group
			order = append(order, group.ID)
		}

		if row.AssignmentID.Valid {
			group.AssignmentIDs = append(group.AssignmentIDs, row.AssignmentID.Int64)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	groups := make([]*domain.ScheduleAssignmentGroup, 0, len(order))
	for _, id := range order {
		groups = append(groups, groupsMap[id])
	}

	return groups, nil
}

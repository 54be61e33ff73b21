package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
)

func (r *Repository) GetAllShiftTemplates() ([]*domain.ShiftTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			st.id,
			st.name,
			st.description,
			st.created_at,
			st.version,
			sts.id,
			sts.day_of_week,
			sts.start_time,
			sts.end_time,
			sts.break_start,
			sts.break_end,
			sts.break_minutes
		FROM shift_templates st
		LEFT JOIN shift_template_segments sts ON st.id = sts.template_id
		ORDER BY st.id, sts.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templatesMap := make(map[int64]*domain.ShiftTemplate)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID          int64
			Name        string
			Description string
			CreatedAt   time.Time
			Version     int32

			SegmentID    sql.NullInt64
			DayOfWeek    sql.NullInt32
			StartTime    sql.NullString
			EndTime      sql.NullString
			BreakStart   sql.NullString
			BreakEnd     sql.NullString
			BreakMinutes sql.NullInt32
		}

		dst := []any{
			&row.ID,
			&row.Name,
			&row.Description,
			&row.CreatedAt,
			&row.Version,
			&row.SegmentID,
			&row.DayOfWeek,
			&row.StartTime,
			&row.EndTime,
			&row.BreakStart,
			&row.BreakEnd,
			&row.BreakMinutes,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		template, exists := templatesMap[row.ID]
		if !exists {
			template = &domain.ShiftTemplate{
				ID:          row.ID,
				Name:        row.Name,
				Description: row.Description,
				Segments:    make([]domain.ShiftTemplateSegment, 0),
				CreatedAt:   row.CreatedAt,
				Version:     row.Version,
			}
			templatesMap[row.ID] = template
			order = append(order, row.ID)
		}

		// A template without segments produces one row with NULL segment
		// columns.
		if !row.SegmentID.Valid {
			continue
		}

		template.Segments = append(template.Segments, segmentFromRow(
			row.SegmentID.Int64, row.DayOfWeek.Int32, row.StartTime.String, row.EndTime.String,
			row.BreakStart, row.BreakEnd, row.BreakMinutes,
		))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	templates := make([]*domain.ShiftTemplate, 0, len(order))
	for _, id := range order {
		templates = append(templates, templatesMap[id])
	}

	return templates, nil
}

func (r *Repository) GetShiftTemplate(id int64) (*domain.ShiftTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			st.name,
			st.description,
			st.created_at,
			st.version,
			sts.id,
			sts.day_of_week,
			sts.start_time,
			sts.end_time,
			sts.break_start,
			sts.break_end,
			sts.break_minutes
		FROM shift_templates st
		LEFT JOIN shift_template_segments sts ON st.id = sts.template_id
		WHERE st.id = $1
		ORDER BY sts.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	st := &domain.ShiftTemplate{
		ID:       id,
		Segments: make([]domain.ShiftTemplateSegment, 0),
	}
	found := false

	for rows.Next() {
		var row struct {
			Name        string
			Description string
			CreatedAt   time.Time
			Version     int32

			SegmentID    sql.NullInt64
			DayOfWeek    sql.NullInt32
			StartTime    sql.NullString
			EndTime      sql.NullString
			BreakStart   sql.NullString
			BreakEnd     sql.NullString
			BreakMinutes sql.NullInt32
		}

		dst := []any{
			&row.Name,
			&row.Description,
			&row.CreatedAt,
			&row.Version,
			&row.SegmentID,
			&row.DayOfWeek,
			&row.StartTime,
			&row.EndTime,
			&row.BreakStart,
			&row.BreakEnd,
			&row.BreakMinutes,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if !found {
			st.Name = row.Name
			st.Description = row.Description
			st.CreatedAt = row.CreatedAt
			st.Version = row.Version
			found = true
		}

		if !row.SegmentID.Valid {
			continue
		}

		st.Segments = append(st.Segments, segmentFromRow(
			row.SegmentID.Int64, row.DayOfWeek.Int32, row.StartTime.String, row.EndTime.String,
			row.BreakStart, row.BreakEnd, row.BreakMinutes,
		))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, sql.ErrNoRows
	}

	return st, nil
}

// GetShiftTemplatesByIDs loads the templates referenced by a set of
// assignments, keyed by id, ready to hand to the engine.
func (r *Repository) GetShiftTemplatesByIDs(ids []int64) (map[int64]*domain.ShiftTemplate, error) {
	templates := make(map[int64]*domain.ShiftTemplate, len(ids))
	for _, id := range ids {
		if _, exists := templates[id]; exists {
			continue
		}
		template, err := r.GetShiftTemplate(id)
		if err != nil {
			return nil, err
		}
		templates[id] = template
	}
	return templates, nil
}

func (r *Repository) CreateShiftTemplate(st *domain.ShiftTemplate) error {
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
		INSERT INTO shift_templates (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, version
	`
	if err := tx.QueryRowContext(ctx, query, st.Name, st.Description).Scan(&st.ID, &st.CreatedAt, &st.Version); err != nil {
		return err
	}

	for i := range st.Segments {
		query = `
			INSERT INTO shift_template_segments (template_id, day_of_week, start_time, end_time, break_start, break_end, break_minutes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		params := []any{
			st.ID,
			st.Segments[i].DayOfWeek,
			st.Segments[i].StartTime,
			st.Segments[i].EndTime,
			st.Segments[i].BreakStart,
			st.Segments[i].BreakEnd,
			st.Segments[i].BreakMinutes,
		}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&st.Segments[i].ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateShiftTemplate(st *domain.ShiftTemplate) error {
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
		UPDATE shift_templates
		SET
			name = $1,
			description = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`
	params := []any{st.Name, st.Description, st.ID, st.Version}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&st.Version); err != nil {
		return err
	}

	// Segments are replaced wholesale: templates are small and this keeps
	// the update idempotent.
	if _, err := tx.ExecContext(ctx, `DELETE FROM shift_template_segments WHERE template_id = $1`, st.ID); err != nil {
		return err
	}

	for i := range st.Segments {
		query = `
			INSERT INTO shift_template_segments (template_id, day_of_week, start_time, end_time, break_start, break_end, break_minutes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`
		params := []any{
			st.ID,
			st.Segments[i].DayOfWeek,
			st.Segments[i].StartTime,
			st.Segments[i].EndTime,
			st.Segments[i].BreakStart,
			st.Segments[i].BreakEnd,
			st.Segments[i].BreakMinutes,
		}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&st.Segments[i].ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShiftTemplate(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM shift_templates WHERE id = $1
	`

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}

func segmentFromRow(id int64, dayOfWeek int32, startTime, endTime string, breakStart, breakEnd sql.NullString, breakMinutes sql.NullInt32) domain.ShiftTemplateSegment {
	segment := domain.ShiftTemplateSegment{
		ID:        id,
		DayOfWeek: dayOfWeek,
		StartTime: startTime,
		EndTime:   endTime,
	}
	if breakStart.Valid {
		segment.BreakStart = &breakStart.String
	}
	if breakEnd.Valid {
		segment.BreakEnd = &breakEnd.String
	}
	if breakMinutes.Valid {
		segment.BreakMinutes = &breakMinutes.Int32
	}
	return segment
}

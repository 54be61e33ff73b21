package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nominasur/turnos/backend/internal/domain"
	"github.com/nominasur/turnos/backend/internal/utils"
)

func (h *Handler) GetAllShiftTemplates(w http.ResponseWriter, r *http.Request) {
	sts, err := h.repository.GetAllShiftTemplates()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "lista de plantillas obtenida", sts)
}

func (h *Handler) CreateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		Segments    []struct {
			DayOfWeek    int32   `json:"dayOfWeek" validate:"required,gte=1,lte=7"`
			StartTime    string  `json:"startTime" validate:"required"`
			EndTime      string  `json:"endTime" validate:"required"`
			BreakStart   *string `json:"breakStart"`
			BreakEnd     *string `json:"breakEnd"`
			BreakMinutes *int32  `json:"breakMinutes" validate:"omitempty,gte=0"`
		} `json:"segments" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	st := &domain.ShiftTemplate{
		Name:        req.Name,
		Description: req.Description,
		Segments:    make([]domain.ShiftTemplateSegment, 0, len(req.Segments)),
	}

	for _, segment := range req.Segments {
		st.Segments = append(st.Segments, domain.ShiftTemplateSegment{
			DayOfWeek:    segment.DayOfWeek,
			StartTime:    segment.StartTime,
			EndTime:      segment.EndTime,
			BreakStart:   segment.BreakStart,
			BreakEnd:     segment.BreakEnd,
			BreakMinutes: segment.BreakMinutes,
		})
	}

	if err := utils.ValidateShiftTemplateSegments(st); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.CreateShiftTemplate(st); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shift_templates_name_key":
				h.errorResponse(w, r, "ya existe una plantilla con ese nombre")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "plantilla creada", st)
}

func (h *Handler) GetShiftTemplate(w http.ResponseWriter, r *http.Request) {
	st := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)

	h.successResponse(w, r, "plantilla obtenida", st)
}

func (h *Handler) UpdateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	st := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Segments    *[]struct {
			DayOfWeek    int32   `json:"dayOfWeek" validate:"required,gte=1,lte=7"`
			StartTime    string  `json:"startTime" validate:"required"`
			EndTime      string  `json:"endTime" validate:"required"`
			BreakStart   *string `json:"breakStart"`
			BreakEnd     *string `json:"breakEnd"`
			BreakMinutes *int32  `json:"breakMinutes" validate:"omitempty,gte=0"`
		} `json:"segments" validate:"omitempty,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Description != nil {
		st.Description = *req.Description
	}
	if req.Segments != nil {
		st.Segments = make([]domain.ShiftTemplateSegment, 0, len(*req.Segments))
		for _, segment := range *req.Segments {
			st.Segments = append(st.Segments, domain.ShiftTemplateSegment{
				DayOfWeek:    segment.DayOfWeek,
				StartTime:    segment.StartTime,
				EndTime:      segment.EndTime,
				BreakStart:   segment.BreakStart,
				BreakEnd:     segment.BreakEnd,
				BreakMinutes: segment.BreakMinutes,
			})
		}

		if err := utils.ValidateShiftTemplateSegments(st); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}

	if err := h.repository.UpdateShiftTemplate(st); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "shift_templates_name_key":
				h.errorResponse(w, r, "ya existe una plantilla con ese nombre")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "inténtelo de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "plantilla actualizada", st)
}

func (h *Handler) DeleteShiftTemplate(w http.ResponseWriter, r *http.Request) {
	st := r.Context().Value(ShiftTemplateCtx).(*domain.ShiftTemplate)

	if err := h.repository.DeleteShiftTemplate(st.ID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "schedule_assignments_shift_template_id_fkey":
				h.errorResponse(w, r, "la plantilla está en uso por una asignación y no puede eliminarse")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "plantilla eliminada", nil)
}

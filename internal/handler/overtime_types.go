package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/nominasur/turnos/backend/internal/domain"
)

func (h *Handler) GetAllOvertimeTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.repository.GetAllOvertimeTypes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "catálogo de tipos de horas extra obtenido", types)
}

func (h *Handler) GetOvertimeType(w http.ResponseWriter, r *http.Request) {
	ot := r.Context().Value(OvertimeTypeCtx).(*domain.OvertimeType)
	h.successResponse(w, r, "tipo de hora extra obtenido", ot)
}

func (h *Handler) CreateOvertimeType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code       string `json:"code" validate:"required"`
		Name       string `json:"name" validate:"required"`
		Percentage string `json:"percentage" validate:"required"`
		IsActive   *bool  `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	percentage, err := decimal.NewFromString(req.Percentage)
	if err != nil {
		h.badRequest(w, r, errors.New("el porcentaje es inválido"))
		return
	}

	ot := &domain.OvertimeType{
		Code:       req.Code,
		Name:       req.Name,
		Percentage: percentage,
		IsActive:   true,
	}
	if req.IsActive != nil {
		ot.IsActive = *req.IsActive
	}

	if err := h.repository.CreateOvertimeType(ot); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "overtime_types_code_key":
				h.badRequest(w, r, errors.New("el código ya existe"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "tipo de hora extra creado", ot)
}

func (h *Handler) UpdateOvertimeType(w http.ResponseWriter, r *http.Request) {
	ot := r.Context().Value(OvertimeTypeCtx).(*domain.OvertimeType)

	var req struct {
		Name       *string `json:"name"`
		Percentage *string `json:"percentage"`
		IsActive   *bool   `json:"isActive"`
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
		ot.Name = *req.Name
	}
	if req.Percentage != nil {
		percentage, err := decimal.NewFromString(*req.Percentage)
		if err != nil {
			h.badRequest(w, r, errors.New("el porcentaje es inválido"))
			return
		}
		ot.Percentage = percentage
	}
	if req.IsActive != nil {
		ot.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateOvertimeType(ot); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "inténtelo de nuevo")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "tipo de hora extra actualizado", ot)
}

func (h *Handler) DeleteOvertimeType(w http.ResponseWriter, r *http.Request) {
	ot := r.Context().Value(OvertimeTypeCtx).(*domain.OvertimeType)

	if err := h.repository.DeleteOvertimeType(ot.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "tipo de hora extra eliminado", nil)
}

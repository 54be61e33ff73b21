package handler

import (
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/nominasur/turnos/backend/internal/engine"
)

var knownConfigKeys = []string{
	engine.ConfigKeyNightStart,
	engine.ConfigKeyNightEnd,
	engine.ConfigKeyWeeklyHours,
	engine.ConfigKeyBreak,
	engine.ConfigKeyDailyHours,
}

func (h *Handler) GetAllConfig(w http.ResponseWriter, r *http.Request) {
	entries, err := h.repository.GetAllConfig()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "configuración obtenida", entries)
}

func (h *Handler) SetConfig(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "clave")
	if !slices.Contains(knownConfigKeys, key) {
		h.badRequest(w, r, errors.New("clave de configuración desconocida"))
		return
	}

	var req struct {
		Value string `json:"value" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := h.repository.SetConfig(key, req.Value); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "configuración actualizada", nil)
}

package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nominasur/turnos/backend/internal/domain"
	"github.com/nominasur/turnos/backend/internal/engine"
	"github.com/nominasur/turnos/backend/internal/utils"
)

const dateLayout = "2006-01-02"

func (h *Handler) CreateScheduleAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID       int64  `json:"employeeID" validate:"required"`
		ShiftTemplateID  int64  `json:"shiftTemplateID" validate:"required"`
		StartDate        string `json:"startDate" validate:"required"`
		EndDate          string `json:"endDate" validate:"required"`
		HolidayDecisions []struct {
			HolidayDate        string                   `json:"holidayDate" validate:"required"`
			ApplyHolidayCharge bool                     `json:"applyHolidayCharge"`
			ExemptionReason    string                   `json:"exemptionReason"`
			SegmentOverrides   []domain.SegmentOverride `json:"segmentOverrides"`
		} `json:"holidayDecisions" validate:"omitempty,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		h.badRequest(w, r, errors.New("la fecha de inicio es inválida"))
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		h.badRequest(w, r, errors.New("la fecha de fin es inválida"))
		return
	}
	if err := utils.ValidateAssignmentDates(startDate, &endDate); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee, err := h.repository.GetEmployeeByID(req.EmployeeID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "el empleado no existe")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if !employee.IsActive {
		h.errorResponse(w, r, "el empleado no está activo")
		return
	}

	template, err := h.repository.GetShiftTemplate(req.ShiftTemplateID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "la plantilla no existe")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	assignment := &domain.ScheduleAssignment{
		EmployeeID:      req.EmployeeID,
		ShiftTemplateID: req.ShiftTemplateID,
		StartDate:       startDate,
		EndDate:         &endDate,
	}

	// Conflictos contra las asignaciones ya existentes del empleado.
	existing, err := h.repository.GetScheduleAssignmentsByEmployee(req.EmployeeID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	templateIDs := []int64{req.ShiftTemplateID}
	for _, a := range existing {
		templateIDs = append(templateIDs, a.ShiftTemplateID)
	}
	templates, err := h.repository.GetShiftTemplatesByIDs(templateIDs)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	conflicts := engine.DetectConflicts([]*domain.ScheduleAssignment{assignment}, existing, templates)
	if len(conflicts) > 0 {
		h.writeJSON(w, r, http.StatusOK, Response{
			Success: false,
			Message: "la asignación tiene conflictos de horario",
			Data:    conflicts,
		})
		return
	}

	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	exemptions, err := h.repository.GetExemptionsByEmployee(req.EmployeeID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	snapshot := engine.NewSnapshot(holidays, exemptions)

	decisions := make(map[string]domain.HolidayDecision, len(req.HolidayDecisions))
	for _, decision := range req.HolidayDecisions {
		holidayDate, err := time.Parse(dateLayout, decision.HolidayDate)
		if err != nil {
			h.badRequest(w, r, errors.New("una decisión de festivo tiene fecha inválida"))
			return
		}
		decisions[engine.DateKey(holidayDate)] = domain.HolidayDecision{
			HolidayDate:        holidayDate,
			ApplyHolidayCharge: decision.ApplyHolidayCharge,
			ExemptionReason:    decision.ExemptionReason,
			SegmentOverrides:   decision.SegmentOverrides,
		}
	}

	generated, err := engine.GenerateDays(assignment, template, decisions, snapshot)
	if err != nil {
		var validationErr *engine.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.badRequest(w, r, validationErr)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.repository.CreateScheduleAssignment(assignment, generated.Exemptions); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.recomputeEmployeeGroups(req.EmployeeID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// Resumen de horas de la asignación recién creada para el correo.
	classifier := engine.NewClassifier(engine.LoadConfig(h.repository), snapshot)
	classification, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{assignment}, templates)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	catalog, err := h.repository.GetActiveOvertimeTypes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	totals := engine.AggregateGroup(classification, catalog)

	mailMessage := domain.MailMessage{
		Type: "schedule_assigned",
		To:   employee.Email,
		Data: domain.ScheduleAssignedMailData{
			FullName:      employee.FullName,
			TemplateName:  template.Name,
			PeriodStart:   assignment.StartDate.Format(dateLayout),
			PeriodEnd:     assignment.EffectiveEndDate().Format(dateLayout),
			TotalHours:    totals.TotalHours.String(),
			OvertimeHours: totals.OvertimeHours.String(),
		},
	}

	mailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "asignación creada", assignment)
}

func (h *Handler) GetScheduleAssignment(w http.ResponseWriter, r *http.Request) {
	assignment := r.Context().Value(AssignmentCtx).(*domain.ScheduleAssignment)
	h.successResponse(w, r, "asignación obtenida", assignment)
}

func (h *Handler) DeleteScheduleAssignment(w http.ResponseWriter, r *http.Request) {
	assignment := r.Context().Value(AssignmentCtx).(*domain.ScheduleAssignment)

	if err := h.repository.DeleteScheduleAssignment(assignment.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.recomputeEmployeeGroups(assignment.EmployeeID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "asignación eliminada", nil)
}

// GetScheduleAssignmentHours classifies one assignment in isolation and
// returns its hours per payroll bucket.
func (h *Handler) GetScheduleAssignmentHours(w http.ResponseWriter, r *http.Request) {
	assignment := r.Context().Value(AssignmentCtx).(*domain.ScheduleAssignment)

	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	exemptions, err := h.repository.GetExemptionsByEmployee(assignment.EmployeeID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	templates, err := h.repository.GetShiftTemplatesByIDs([]int64{assignment.ShiftTemplateID})
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	snapshot := engine.NewSnapshot(holidays, exemptions)
	classifier := engine.NewClassifier(engine.LoadConfig(h.repository), snapshot)

	classification, err := classifier.ClassifyAssignments([]*domain.ScheduleAssignment{assignment}, templates)
	if err != nil {
		var validationErr *engine.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.badRequest(w, r, validationErr)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	catalog, err := h.repository.GetActiveOvertimeTypes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	totals := engine.AggregateGroup(classification, catalog)

	hours := make(map[string]string, len(classification))
	for code, value := range classification {
		hours[code.Code()] = value.String()
	}

	h.successResponse(w, r, "horas de la asignación obtenidas", map[string]any{
		"hours":         hours,
		"regularHours":  totals.RegularHours,
		"overtimeHours": totals.OvertimeHours,
		"festivoHours":  totals.FestivoHours,
		"totalHours":    totals.TotalHours,
		"assignedHours": totals.AssignedHours,
	})
}

package handler

import (
	"net/http"
	"time"

	"github.com/nominasur/turnos/backend/internal/domain"
	"github.com/nominasur/turnos/backend/internal/engine"
)

func (h *Handler) GetScheduleGroup(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.ScheduleAssignmentGroup)
	h.successResponse(w, r, "grupo obtenido", group)
}

// recomputeEmployeeGroups rebuilds every cached group of one employee from
// the current assignments. Called after any mutation that can change the
// classification: create, delete, day regeneration.
func (h *Handler) recomputeEmployeeGroups(employeeID int64) error {
	assignments, err := h.repository.GetScheduleAssignmentsByEmployee(employeeID)
	if err != nil {
		return err
	}

	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		return err
	}
	exemptions, err := h.repository.GetExemptionsByEmployee(employeeID)
	if err != nil {
		return err
	}
	catalog, err := h.repository.GetActiveOvertimeTypes()
	if err != nil {
		return err
	}

	templateIDs := make([]int64, 0, len(assignments))
	for _, assignment := range assignments {
		templateIDs = append(templateIDs, assignment.ShiftTemplateID)
	}
	templates, err := h.repository.GetShiftTemplatesByIDs(templateIDs)
	if err != nil {
		return err
	}

	snapshot := engine.NewSnapshot(holidays, exemptions)
	classifier := engine.NewClassifier(engine.LoadConfig(h.repository), snapshot)

	groups := make([]*domain.ScheduleAssignmentGroup, 0)
	for _, members := range engine.GroupAssignments(assignments) {
		classification, err := classifier.ClassifyAssignments(members, templates)
		if err != nil {
			return err
		}
		totals := engine.AggregateGroup(classification, catalog)

		start, end := engine.GroupPeriod(members)
		group := &domain.ScheduleAssignmentGroup{
			EmployeeID:    employeeID,
			PeriodStart:   start,
			PeriodEnd:     end,
			RegularHours:  totals.RegularHours,
			OvertimeHours: totals.OvertimeHours,
			FestivoHours:  totals.FestivoHours,
			TotalHours:    totals.TotalHours,
			AssignedHours: totals.AssignedHours,
		}
		for _, member := range members {
			group.AssignmentIDs = append(group.AssignmentIDs, member.ID)
		}
		if totals.PredominantOvertime != nil {
			code := totals.PredominantOvertime.Code
			group.PredominantOvertime = &code
		}
		if totals.PredominantFestivo != nil {
			code := totals.PredominantFestivo.Code
			group.PredominantFestivo = &code
		}
		group.Status = group.StatusFor(time.Now())

		groups = append(groups, group)
	}

	return h.repository.ReplaceEmployeeGroups(employeeID, groups)
}

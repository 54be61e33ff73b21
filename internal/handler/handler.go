package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/nominasur/turnos/backend/internal/config"
	"github.com/nominasur/turnos/backend/internal/domain"
	"github.com/nominasur/turnos/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	es := es.New()
	uni := ut.New(es, es)
	trans, _ := uni.GetTranslator("es")
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/restablecer-clave", func(r chi.Router) {
			r.Post("/solicitar", h.RequireResetPassword)
			r.Post("/confirmar", h.ConfirmResetPassword)
		})
	})

	// Todo lo que sigue requiere sesión iniciada.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/mi-informacion", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/clave", h.UpdateMyPassword)
			r.Route("/actualizar-correo", func(r chi.Router) {
				r.Post("/solicitar", h.RequireUpdateEmail)
				r.Post("/confirmar", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/empleados", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdministrador})).Post("/", h.CreateEmployee)
			r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdministrador})).Get("/", h.GetAllEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employeeInfo)
				r.Get("/", h.GetEmployee)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdministrador})).Patch("/", h.UpdateEmployee)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdministrador})).Delete("/", h.DeleteEmployee)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdministrador})).Patch("/clave", h.UpdateEmployeePassword)
				r.Get("/asignaciones", h.GetEmployeeAssignments)
				r.Get("/grupos", h.GetEmployeeGroups)
			})
		})

		r.Route("/plantillas", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdministrador})).Post("/", h.CreateShiftTemplate)
			r.Get("/", h.GetAllShiftTemplates)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shiftTemplate)
				r.Get("/", h.GetShiftTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdministrador})).Patch("/", h.UpdateShiftTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdministrador})).Delete("/", h.DeleteShiftTemplate)
			})
		})

		r.Route("/asignaciones", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdministrador})).Post("/", h.CreateScheduleAssignment)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.scheduleAssignment)
				r.Get("/", h.GetScheduleAssignment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleSupervisor, domain.RoleAdministrador})).Delete("/", h.DeleteScheduleAssignment)
				r.Get("/horas", h.GetScheduleAssignmentHours)
			})
		})

		r.Route("/grupos", func(r chi.Router) {
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.scheduleGroup)
				r.Get("/", h.GetScheduleGroup)
			})
		})

		r.Route("/tipos-horas-extra", func(r chi.Router) {
			r.Get("/", h.GetAllOvertimeTypes)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdministrador})).Post("/", h.CreateOvertimeType)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.overtimeType)
				r.Get("/", h.GetOvertimeType)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdministrador})).Patch("/", h.UpdateOvertimeType)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdministrador})).Delete("/", h.DeleteOvertimeType)
			})
		})

		r.Route("/configuracion", func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdministrador}))
			r.Get("/", h.GetAllConfig)
			r.Put("/{clave}", h.SetConfig)
		})
	})
}

package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// Handlers groups every route handler the router mounts.
type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Office     OfficeHandler
	Attendance AttendanceHandler
	Streak     StreakHandler
	Recap      RecapHandler
	ErrorLog   ErrorLogHandler
	Leave      LeaveHandler
}

type RouterOptions struct {
	AllowedOrigins []string
	Env            string
	Version        string
	// Limiter is optional; nil disables per-IP throttling.
	Limiter *ratelimit.GlobalRateLimiter
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ngabsen"),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	admin := middleware.RequireRole(user.RoleAdmin)
	employeeOnly := middleware.RequireRole(user.RoleEmployee)

	r.Route("/api/v1", func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(middleware.RateLimit(opts.Limiter))
		}

		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Use(admin)
				r.Get("/", h.Employee.List)
				r.Get("/{employee_id}", h.Employee.Get)
			})

			r.Route("/office-settings", func(r chi.Router) {
				r.With(middleware.RequireRole(user.RoleAdmin, user.RoleEmployee)).Get("/", h.Office.Get)

				r.Group(func(r chi.Router) {
					r.Use(admin)
					r.Post("/", h.Office.Create)
					r.Put("/", h.Office.Update)
					r.Delete("/", h.Office.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(employeeOnly)
					r.Post("/clock-in", h.Attendance.ClockIn)
					r.Post("/clock-out", h.Attendance.ClockOut)
					r.Patch("/cancel-clock-out", h.Attendance.CancelClockOut)
					r.Get("/status", h.Attendance.Status)
					r.Get("/history", h.Attendance.History)
				})

				r.Group(func(r chi.Router) {
					r.Use(admin)
					r.Post("/absences/sweep", h.Attendance.SweepAbsences)
					r.Get("/recaps", h.Recap.List)
					r.Post("/recaps/generate", h.Recap.Generate)
				})
			})

			r.Route("/streaks", func(r chi.Router) {
				r.With(employeeOnly).Get("/me", h.Streak.GetMine)

				r.Group(func(r chi.Router) {
					r.Use(admin)
					r.Get("/", h.Streak.List)
					r.Get("/range", h.Streak.ListByRange)
					r.Get("/employee/{employee_id}", h.Streak.GetByEmployee)
					r.Post("/reset/{employee_id}", h.Streak.Reset)
				})
			})

			r.Route("/error-logs", func(r chi.Router) {
				r.Post("/", h.ErrorLog.Create)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(user.RoleSuperAdmin))
					r.Get("/", h.ErrorLog.List)
					r.Get("/{id}", h.ErrorLog.Get)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Use(employeeOnly)
				r.Post("/", h.Leave.CreateRequest)
				r.Get("/", h.Leave.GetMyRequests)
				r.Get("/approval", h.Leave.GetApprovalList)
				r.Patch("/{id}/status", h.Leave.UpdateStatus)
				r.Delete("/{id}", h.Leave.CancelRequest)
			})
		})
	})
	return r
}

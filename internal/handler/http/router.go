package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions carries the cross-cutting settings of the HTTP surface.
type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// Handlers groups every route handler.
type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Salary     SalaryHandler
	Document   DocumentHandler
	Dashboard  DashboardHandler
	Health     HealthHandler
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  opts.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(middleware.Metrics)
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, "Method not allowed")
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimitByIP(opts.AuthRateLimit, opts.AuthRateWindow))
				r.Post("/login", h.Auth.Login)
				r.Post("/signup", h.Auth.Signup)
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired)
				r.Get("/verify", h.Auth.Verify)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/employee/{id}", h.Attendance.History)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.Post("/clock-in", h.Attendance.ClockIn)
					r.Post("/clock-out", h.Attendance.ClockOut)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/today", h.Attendance.Today)
					r.Get("/date/{date}", h.Attendance.ByDate)
					r.Get("/stats", h.Attendance.Stats)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/salaries", func(r chi.Router) {
				r.Get("/my", h.Salary.ListMine)
				r.Get("/stats/employee", h.Salary.StatsForEmployee)
				r.Get("/employee/{employeeId}", h.Salary.ListByEmployee)
				r.Get("/{id}/payslip", h.Salary.Payslip)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", h.Salary.List)
					r.Post("/", h.Salary.Create)
					r.Get("/stats/admin", h.Salary.StatsForAdmin)
					r.Get("/export", h.Salary.Export)
					r.Put("/{id}", h.Salary.Update)
					r.Delete("/{id}", h.Salary.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/", h.Leave.ListMine)
				r.Delete("/{id}", h.Leave.Delete)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/admin", h.Leave.ListAll)
					r.Put("/{id}/status", h.Leave.SetStatus)
					r.Get("/stats/admin", h.Leave.Stats)
				})
			})

			r.Route("/documents", func(r chi.Router) {
				r.Get("/download/{id}", h.Document.Download)
				r.Delete("/{id}", h.Document.Delete)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireEmployee)
					r.Post("/upload", h.Document.Upload)
					r.Get("/employee", h.Document.ListMine)
				})

				r.With(middleware.RequireAdmin).Get("/", h.Document.ListAll)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/stats", h.Dashboard.GetStats)
			})
		})
	})
	return r
}

package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/stitchline/garment-erp-go/internal/handler/http/middleware"
	"github.com/stitchline/garment-erp-go/internal/pkg/jwt"
)

type RouterConfig struct {
	FrontendURL     string
	Env             string
	UploadsBasePath string
}

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Worker     WorkerHandler
	Attendance AttendanceHandler
	Salary     SalaryHandler
	Master     MasterHandler
	Production ProductionHandler
	Piecework  PieceworkHandler
	Report     ReportHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "garment-erp"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
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

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded photos are served straight from local storage.
	if cfg.UploadsBasePath != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsBasePath)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Post("/logout", h.Auth.Logout)
				r.Post("/change-password", h.Auth.ChangePassword)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/accounts", h.Auth.CreateAccount)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Get("/dashboard", h.Dashboard.Summary)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}", h.Employee.Update)
				r.Patch("/{id}/active", h.Employee.SetActive)
				r.Post("/{id}/photo", h.Employee.UploadPhoto)
			})

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", h.Worker.List)
				r.Post("/", h.Worker.Create)
				r.Get("/{id}", h.Worker.Get)
				r.Put("/{id}", h.Worker.Update)
				r.Patch("/{id}/active", h.Worker.SetActive)
				r.Post("/{id}/photo", h.Worker.UploadPhoto)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Post("/", h.Attendance.MarkDay)
				r.Get("/summary", h.Attendance.Summary)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.Master.ListProducts)
				r.Post("/", h.Master.CreateProduct)
				r.Get("/{id}", h.Master.GetProduct)
				r.Put("/{id}", h.Master.UpdateProduct)
			})

			r.Route("/operations", func(r chi.Router) {
				r.Get("/", h.Master.ListOperations)
				r.Post("/", h.Master.CreateOperation)
				r.Get("/{id}", h.Master.GetOperation)
				r.Put("/{id}", h.Master.UpdateOperation)
			})

			r.Route("/productions", func(r chi.Router) {
				r.Get("/", h.Production.List)
				r.Post("/", h.Production.Create)
				r.Get("/{id}", h.Production.Get)
				r.Patch("/{id}/status", h.Production.UpdateStatus)
			})

			r.Route("/worker-salaries", func(r chi.Router) {
				r.Get("/", h.Piecework.List)
				r.Post("/", h.Piecework.Record)
				r.Get("/{id}", h.Piecework.Get)
				r.Post("/mark-paid", h.Piecework.MarkPaid)
				r.Delete("/{id}", h.Piecework.Delete)
			})

			r.Route("/salaries", func(r chi.Router) {
				r.Get("/", h.Salary.List)
				r.Post("/", h.Salary.Create)
				r.Get("/{id}", h.Salary.Get)
				r.Put("/{id}", h.Salary.Update)
				r.Post("/mark-paid", h.Salary.MarkPaid)
				r.Delete("/{id}", h.Salary.Delete)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/reconcile", h.Salary.Reconcile)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/worker-earnings", h.Report.WorkerEarnings)
				r.Get("/worker-earnings/export", h.Report.ExportWorkerEarnings)
				r.Get("/operation-expenses", h.Report.OperationExpenses)
				r.Get("/operation-expenses/export", h.Report.ExportOperationExpenses)
				r.Get("/salaries", h.Report.MonthlySalaries)
				r.Get("/salaries/export", h.Report.ExportMonthlySalaries)
			})
		})
	})

	return r
}

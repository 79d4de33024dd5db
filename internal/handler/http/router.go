package http

import (
	"log/slog"
	"os"

	"github.com/cecytebcs/attendance-backend-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	scheduleHandler ScheduleHandler,
	punchHandler PunchHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/import", employeeHandler.ImportRoster)
			r.Get("/template", employeeHandler.DownloadTemplate)
			r.Get("/{number}", employeeHandler.GetEmployee)
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", scheduleHandler.ListShifts)
			r.Post("/import", scheduleHandler.ImportSchedules)
			r.Get("/template", scheduleHandler.DownloadTemplate)
			r.Route("/employee/{number}", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListShiftsByEmployee)
				r.Get("/weekday/{weekday}", scheduleHandler.ListShiftsByEmployeeAndWeekday)
			})
		})

		r.Route("/punches", func(r chi.Router) {
			r.Get("/", punchHandler.ListPunches)
			r.Post("/", punchHandler.RegisterPunch)
			r.Post("/import", punchHandler.ImportPunchFile)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Post("/attendance", reportHandler.BuildAttendanceReport)
		})
	})

	return r
}

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/cecytebcs/attendance-backend-go/internal/config"
	appHTTP "github.com/cecytebcs/attendance-backend-go/internal/handler/http"
	"github.com/cecytebcs/attendance-backend-go/internal/pkg/database"
	"github.com/cecytebcs/attendance-backend-go/internal/repository/postgresql"
	employeeService "github.com/cecytebcs/attendance-backend-go/internal/service/employee"
	punchService "github.com/cecytebcs/attendance-backend-go/internal/service/punch"
	reportService "github.com/cecytebcs/attendance-backend-go/internal/service/report"
	scheduleService "github.com/cecytebcs/attendance-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.App.LogLevel),
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.App.Env),
	)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo, logger)
	scheduleSvc := scheduleService.NewScheduleService(db, shiftRepo, employeeRepo, logger)
	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo, logger)
	reportSvc := reportService.NewReportService(employeeRepo, shiftRepo, punchRepo, logger)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(cfg, employeeHandler, scheduleHandler, punchHandler, reportHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

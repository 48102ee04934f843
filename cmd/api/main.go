package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stitchline/garment-erp-go/internal/config"
	appHTTP "github.com/stitchline/garment-erp-go/internal/handler/http"
	"github.com/stitchline/garment-erp-go/internal/pkg/cron"
	"github.com/stitchline/garment-erp-go/internal/pkg/database"
	"github.com/stitchline/garment-erp-go/internal/pkg/jwt"
	"github.com/stitchline/garment-erp-go/internal/pkg/storage"
	"github.com/stitchline/garment-erp-go/internal/repository/postgresql"
	attendanceService "github.com/stitchline/garment-erp-go/internal/service/attendance"
	serviceAuth "github.com/stitchline/garment-erp-go/internal/service/auth"
	dashboardService "github.com/stitchline/garment-erp-go/internal/service/dashboard"
	employeeService "github.com/stitchline/garment-erp-go/internal/service/employee"
	"github.com/stitchline/garment-erp-go/internal/service/file"
	"github.com/stitchline/garment-erp-go/internal/service/master"
	pieceworkService "github.com/stitchline/garment-erp-go/internal/service/piecework"
	productionService "github.com/stitchline/garment-erp-go/internal/service/production"
	reportService "github.com/stitchline/garment-erp-go/internal/service/report"
	salaryService "github.com/stitchline/garment-erp-go/internal/service/salary"
	workerService "github.com/stitchline/garment-erp-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logLevel := slog.LevelInfo
	if cfg.App.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	productRepo := postgresql.NewProductRepository(db)
	operationRepo := postgresql.NewOperationRepository(db)
	productionRepo := postgresql.NewProductionRepository(db)
	workerSalaryRepo := postgresql.NewWorkerSalaryRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	fileService := file.NewFileService(fileStorage)
	authService := serviceAuth.NewAuthService(db, userRepo, employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	workerSvc := workerService.NewWorkerService(db, workerRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo)
	salarySvc := salaryService.NewSalaryService(db, logger, salaryRepo, employeeRepo, attendanceSvc)
	masterSvc := master.NewMasterService(db, productRepo, operationRepo)
	productionSvc := productionService.NewProductionService(db, logger, productionRepo, productRepo, operationRepo)
	pieceworkSvc := pieceworkService.NewPieceworkService(db, logger, workerSalaryRepo, operationRepo, productionRepo)
	reportSvc := reportService.NewReportService(db, workerSalaryRepo, salaryRepo)
	dashboardSvc := dashboardService.NewDashboardService(db, logger, dashboardRepo, productionRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, fileService),
		Worker:     appHTTP.NewWorkerHandler(workerSvc, fileService),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Salary:     appHTTP.NewSalaryHandler(salarySvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Production: appHTTP.NewProductionHandler(productionSvc),
		Piecework:  appHTTP.NewPieceworkHandler(pieceworkSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		FrontendURL:     cfg.App.FrontendURL,
		Env:             cfg.App.Env,
		UploadsBasePath: cfg.Storage.BasePath,
	}, JWTService, handlers)

	scheduler := cron.NewScheduler(logger)
	if cfg.Cron.Enabled {
		reconcileJob := cron.NewSalaryReconcileJob(salarySvc)
		scheduler.AddJob("salary-reconcile", cfg.Cron.ReconcileInterval, reconcileJob.Run)
		scheduler.Start()
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down...")
	if cfg.Cron.Enabled {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	slog.Info("Server stopped")
}

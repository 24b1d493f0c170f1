package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/ems-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/ems-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/ems-backend-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/ems-backend-go/internal/service/dashboard"
	documentService "github.com/cmlabs-hris/ems-backend-go/internal/service/document"
	employeeService "github.com/cmlabs-hris/ems-backend-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/ems-backend-go/internal/service/leave"
	salaryService "github.com/cmlabs-hris/ems-backend-go/internal/service/salary"
	"github.com/go-chi/httplog/v3"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	lateCutoff, err := cfg.Attendance.Cutoff()
	if err != nil {
		return err
	}
	clk := clock.New(loc)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}

	transactor := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, clk)

	salarySvc := salaryService.NewSalaryService(transactor, salaryRepo, employeeRepo, clk)
	documentSvc := documentService.NewDocumentService(documentRepo, employeeRepo, fileStorage, clk)
	employeeSvc := employeeService.NewEmployeeService(transactor, userRepo, employeeRepo, salarySvc, documentSvc, clk)
	authSvc := serviceAuth.NewAuthService(transactor, userRepo, employeeRepo, JWTService, clk, cfg.Auth.AllowAdminSignup)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk, lateCutoff)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, clk)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, clk)

	scheduler := cron.NewScheduler()
	cron.NewDashboardJobs(dashboardSvc).RegisterJobs(scheduler, cfg.Jobs.GaugeInterval)
	jobsCtx, stopJobs := context.WithCancel(ctx)
	scheduler.Start(jobsCtx)
	defer func() {
		stopJobs()
		scheduler.Wait()
	}()

	router := appHTTP.NewRouter(
		JWTService,
		appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(authSvc),
			Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
			Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
			Leave:      appHTTP.NewLeaveHandler(leaveSvc),
			Salary:     appHTTP.NewSalaryHandler(salarySvc),
			Document:   appHTTP.NewDocumentHandler(documentSvc),
			Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
			Health:     appHTTP.NewHealthHandler(clk),
		},
		appHTTP.RouterOptions{
			Logger:         logger,
			LogLevel:       cfg.SlogLevel(),
			AllowedOrigins: cfg.App.AllowedOrigins,
			AuthRateLimit:  cfg.Auth.RateLimit,
			AuthRateWindow: cfg.Auth.RateLimitWindow,
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

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

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/lock"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/ratelimit"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/ngabsen-backend-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/ngabsen-backend-go/internal/service/auth"
	employeeService "github.com/cmlabs-hris/ngabsen-backend-go/internal/service/employee"
	errorLogService "github.com/cmlabs-hris/ngabsen-backend-go/internal/service/errorlog"
	leaveService "github.com/cmlabs-hris/ngabsen-backend-go/internal/service/leave"
	officeService "github.com/cmlabs-hris/ngabsen-backend-go/internal/service/office"
	recapService "github.com/cmlabs-hris/ngabsen-backend-go/internal/service/recap"
	streakService "github.com/cmlabs-hris/ngabsen-backend-go/internal/service/streak"
	"github.com/go-chi/httplog/v3"
	"github.com/redis/go-redis/v9"
)

const version = "v1.0.0"

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	setupLogger(cfg.SlogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := postgresql.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	locker, closeLocker, err := newLocker(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeLocker()

	tx := postgresql.NewTransactor(db)
	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	policyRepo := postgresql.NewOfficePolicyRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	streakRepo := postgresql.NewStreakRepository(db)
	recapRepo := postgresql.NewRecapRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	errorLogRepo := postgresql.NewErrorLogRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	errorLogSvc := errorLogService.NewErrorLogService(errorLogRepo)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	officeSvc := officeService.NewOfficeService(policyRepo, cfg.Office.Timezone)
	streakSvc := streakService.NewStreakService(streakRepo, employeeRepo, tx, locker)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, policyRepo, streakSvc, tx, locker)
	sweeper := attendanceService.NewAbsenceSweeper(attendanceRepo, employeeRepo, leaveRequestRepo, policyRepo, errorLogSvc)
	recapSvc := recapService.NewRecapService(recapRepo, attendanceRepo, employeeRepo, errorLogSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, tx)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, errorLogSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, errorLogSvc),
		Office:     appHTTP.NewOfficeHandler(officeSvc, errorLogSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc, sweeper, errorLogSvc),
		Streak:     appHTTP.NewStreakHandler(streakSvc, errorLogSvc),
		Recap:      appHTTP.NewRecapHandler(recapSvc, errorLogSvc),
		ErrorLog:   appHTTP.NewErrorLogHandler(errorLogSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc, errorLogSvc),
	}, appHTTP.RouterOptions{
		AllowedOrigins: cfg.App.AllowedOrigins,
		Env:            cfg.App.Env,
		Version:        version,
		Limiter:        ratelimit.NewGlobalRateLimiter(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(policyRepo, sweeper, recapSvc).RegisterJobs(scheduler, cfg.Cron.TickInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func setupLogger(lvl slog.Level) {
	logFormat := httplog.SchemaECS.Concise(false)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: logFormat.ReplaceAttr,
	})))
}

// newLocker uses Redis when REDIS_ADDR is set so several API instances share
// employee locks; otherwise locks stay in-process.
func newLocker(ctx context.Context, cfg config.RedisConfig) (lock.Locker, func(), error) {
	if cfg.Addr == "" {
		slog.Info("REDIS_ADDR not set, using in-process employee locks")
		return lock.NewKeyedMutex(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	return lock.NewRedisLocker(client, cfg.LockTTL), func() { _ = client.Close() }, nil
}

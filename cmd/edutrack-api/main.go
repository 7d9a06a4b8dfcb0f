package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	_ "github.com/DiegoMarin025/EduTrack-SW/api/swagger"
	"github.com/DiegoMarin025/EduTrack-SW/internal/repository"
	"github.com/DiegoMarin025/EduTrack-SW/internal/service"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/cache"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/config"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/database"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/jobs"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/logger"
)

// @title EduTrack API
// @version 1.0.0
// @description Academic records backend: grades, group enrollment, dashboards and notifications
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Fatal("database connection failed", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	metrics := service.NewMetricsService()
	cacheSvc := newCache(ctx, cfg, metrics, logr)

	notifications := service.NewNotificationService(repository.NewNotificationRepository(db), metrics, logr)
	queue := jobs.NewQueue(service.NotificationJobType, notifications.Deliver, jobs.QueueConfig{
		Workers:    cfg.Notifications.Workers,
		BufferSize: cfg.Notifications.BufferSize,
		MaxRetries: cfg.Notifications.MaxRetries,
		RetryDelay: cfg.Notifications.RetryDelay,
		Logger:     logr,
		OnFailure:  notifications.HandleFailure,
	})
	// outlives the signal context so requests still in flight can notify
	queue.Start(context.Background())
	notifications.UseDispatcher(queue)

	deps := buildDependencies(db, cfg, cacheSvc, metrics, notifications, logr)
	router := newRouter(cfg, deps, logr)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", server.Addr), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	queue.Stop()
	logr.Info("server exited")
}

// newCache returns a cache service backed by Redis, or a disabled one when Redis is off or unreachable.
func newCache(ctx context.Context, cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) *service.CacheService {
	if !cfg.Dashboard.CacheEnabled {
		return service.NewCacheService(nil, metrics, cfg.Dashboard.CacheTTL, logr, false)
	}
	client, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, dashboard cache disabled", zap.String("addr", cache.Addr(cfg.Redis)), zap.Error(err))
		return service.NewCacheService(nil, metrics, cfg.Dashboard.CacheTTL, logr, false)
	}
	return service.NewCacheService(repository.NewCacheRepository(client, logr), metrics, cfg.Dashboard.CacheTTL, logr, true)
}

type dependencies struct {
	db            *sqlx.DB
	metrics       *service.MetricsService
	auth          *service.AuthService
	grades        *service.GradeService
	enrollments   *service.EnrollmentService
	dashboard     *service.DashboardService
	history       *service.HistoryService
	classes       *service.ClassService
	users         *service.UserService
	support       *service.SupportService
	notifications *service.NotificationService
}

func buildDependencies(db *sqlx.DB, cfg *config.Config, cacheSvc *service.CacheService, metrics *service.MetricsService, notifications *service.NotificationService, logr *zap.Logger) *dependencies {
	validate := validator.New()

	users := repository.NewUserRepository(db)
	groups := repository.NewGroupRepository(db)
	subjects := repository.NewSubjectRepository(db)
	enrollments := repository.NewEnrollmentRepository(db)
	grades := repository.NewGradeRepository(db)
	academic := repository.NewAcademicRepository(db)

	return &dependencies{
		db:      db,
		metrics: metrics,
		auth: service.NewAuthService(users, notifications, validate, logr, service.AuthConfig{
			AccessTokenSecret:    cfg.JWT.Secret,
			AccessTokenExpiry:    cfg.JWT.Expiration,
			AllowLegacyPlaintext: cfg.Auth.AllowLegacyPlaintext,
		}),
		grades:      service.NewGradeService(grades, groups, notifications, cacheSvc, metrics, validate, logr),
		enrollments: service.NewEnrollmentService(enrollments, users, groups, notifications, cacheSvc, logr),
		dashboard: service.NewDashboardService(users, academic, cacheSvc, logr, service.DashboardServiceConfig{
			CacheTTL:    cfg.Dashboard.CacheTTL,
			ProgramName: cfg.Dashboard.ProgramName,
		}),
		history:       service.NewHistoryService(academic, logr),
		classes:       service.NewClassService(groups, subjects, academic, logr),
		users:         service.NewUserService(users, logr),
		support:       service.NewSupportService(repository.NewSupportRepository(db), validate, logr),
		notifications: notifications,
	}
}

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/DiegoMarin025/EduTrack-SW/internal/handler"
	internalmiddleware "github.com/DiegoMarin025/EduTrack-SW/internal/middleware"
	"github.com/DiegoMarin025/EduTrack-SW/internal/models"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/config"
	"github.com/DiegoMarin025/EduTrack-SW/pkg/logger"
	corsmiddleware "github.com/DiegoMarin025/EduTrack-SW/pkg/middleware/cors"
	reqidmiddleware "github.com/DiegoMarin025/EduTrack-SW/pkg/middleware/requestid"
)

const readyTimeout = 2 * time.Second

func newRouter(cfg *config.Config, deps *dependencies, logr *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(deps.metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := deps.db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(deps.metrics.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authHandler := handler.NewAuthHandler(deps.auth)
	gradeHandler := handler.NewGradeHandler(deps.grades)
	enrollmentHandler := handler.NewEnrollmentHandler(deps.enrollments)
	dashboardHandler := handler.NewDashboardHandler(deps.dashboard)
	classHandler := handler.NewClassHandler(deps.classes)
	studentHandler := handler.NewStudentHandler(deps.users, deps.history)
	supportHandler := handler.NewSupportHandler(deps.support)
	notificationHandler := handler.NewNotificationHandler(deps.notifications)

	api := r.Group(cfg.APIPrefix)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/reportes_soporte", supportHandler.Submit)

	// reads need a session and mutations a teacher once AUTH_ENFORCE is set
	var read, write []gin.HandlerFunc
	if cfg.Auth.Enforce {
		jwt := internalmiddleware.JWT(deps.auth)
		read = []gin.HandlerFunc{jwt}
		write = []gin.HandlerFunc{jwt, internalmiddleware.RequireRoles(models.RoleTeacher)}
	}

	reads := api.Group("", read...)
	reads.GET("/dashboard/:id", dashboardHandler.Student)
	reads.GET("/calificaciones", gradeHandler.Get)
	reads.GET("/notificaciones/:usuario_id", notificationHandler.List)
	reads.GET("/alumnos/buscar", studentHandler.Search)
	reads.GET("/alumnos/:id/grupo", enrollmentHandler.StudentGroup)
	reads.GET("/historial_academico/:alumnoId", studentHandler.History)
	reads.GET("/historial_academico/:alumnoId/export", studentHandler.ExportHistory)
	reads.GET("/grupos", classHandler.ListClassSections)
	reads.GET("/grupos_disponibles", classHandler.ListGroups)
	reads.GET("/grupos/:clase_id/alumnos", classHandler.Roster)
	reads.GET("/profesor/:id/stats", classHandler.TeacherStats)

	writes := api.Group("", write...)
	writes.POST("/calificaciones", gradeHandler.Upsert)
	writes.POST("/grupos/agregar_alumno", enrollmentHandler.Assign)
	writes.POST("/grupos/eliminar_alumno", enrollmentHandler.Remove)
	writes.POST("/grupos", classHandler.CreateGroup)
	writes.POST("/clases/crear", classHandler.CreateClass)

	return r
}

package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Services bundles what the HTTP surface needs.
type Services struct {
	Users     service.UserService
	Exercises service.ExerciseService
	Logs      service.LogService
	Exports   service.ExportService
}

// NewRouter builds a gin engine with the standard middleware stack and
// every route registered.
func NewRouter(logger logrus.FieldLogger, allowedOrigins []string, services Services) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestIDMiddleware(), LoggerMiddleware(logger))
	router.Use(cors.New(corsConfig(allowedOrigins)))
	SetupRoutes(router, logger, services)
	return router
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, RequestIDHeader)
	cfg.ExposeHeaders = []string{RequestIDHeader}
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}

func SetupRoutes(router *gin.Engine, logger logrus.FieldLogger, services Services) {
	userHandler := NewUserHandler(services.Users, logger)
	exerciseHandler := NewExerciseHandler(services.Exercises, logger)
	logHandler := NewLogHandler(services.Logs, services.Exports, logger)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	{
		usersGroup := apiGroup.Group("/users")
		{
			// POST /api/users
			usersGroup.POST("", userHandler.CreateUser)
			// GET /api/users
			usersGroup.GET("", userHandler.ListUsers)
			// POST /api/users/:id/exercises
			usersGroup.POST("/:id/exercises", exerciseHandler.AddExercise)
			// GET /api/users/:id/logs?from=&to=&limit=
			usersGroup.GET("/:id/logs", logHandler.GetLog)
			// POST /api/users/:id/logs/export?from=&to=&limit=
			if services.Exports != nil {
				usersGroup.POST("/:id/logs/export", logHandler.ExportLog)
			}
		}
	}
}
